package deps

import (
	"os/exec"
	"strings"
)

// Status represents the installation status of a dependency
type Status struct {
	Name      string
	Purpose   string
	Clipboard bool
	Installed bool
	Path      string
	Version   string
}

// Tool is an external program hyprhue can use.
type Tool struct {
	Name        string
	VersionArgs []string // nil when the tool has no version flag
	Clipboard   bool
	Purpose     string
}

// Tools lists the clipboard and notification helpers, in lookup order.
var Tools = []Tool{
	{Name: "wl-copy", VersionArgs: []string{"--version"}, Clipboard: true, Purpose: "clipboard (Wayland)"},
	{Name: "xclip", VersionArgs: []string{"-version"}, Clipboard: true, Purpose: "clipboard (X11)"},
	{Name: "xsel", VersionArgs: []string{"--version"}, Clipboard: true, Purpose: "clipboard (X11)"},
	{Name: "pbcopy", Clipboard: true, Purpose: "clipboard (macOS)"},
	{Name: "notify-send", VersionArgs: []string{"--version"}, Purpose: "desktop notifications"},
}

// Check looks up tool on PATH and, when it is found, records the first line
// of its version output.
func Check(tool Tool) Status {
	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return Status{Name: tool.Name, Purpose: tool.Purpose, Clipboard: tool.Clipboard, Installed: false}
	}

	status := Status{
		Name:      tool.Name,
		Purpose:   tool.Purpose,
		Clipboard: tool.Clipboard,
		Installed: true,
		Path:      path,
	}

	if tool.VersionArgs == nil {
		return status
	}

	cmd := exec.Command(path, tool.VersionArgs...)
	output, err := cmd.CombinedOutput()
	if err == nil {
		lines := strings.Split(string(output), "\n")
		if len(lines) > 0 {
			status.Version = strings.TrimSpace(lines[0])
		}
	}

	return status
}

// CheckAll checks every entry in Tools.
func CheckAll() []Status {
	statuses := make([]Status, 0, len(Tools))
	for _, t := range Tools {
		statuses = append(statuses, Check(t))
	}
	return statuses
}

// HasClipboard reports whether any clipboard helper is installed.
func HasClipboard(statuses []Status) bool {
	for _, s := range statuses {
		if s.Installed && s.Clipboard {
			return true
		}
	}
	return false
}
