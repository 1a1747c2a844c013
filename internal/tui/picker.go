package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/leonardotrapani/hyprhue/internal/colormodel"
	"github.com/leonardotrapani/hyprhue/internal/config"
)

// Action is what the user wants done with the picked color.
type Action string

const (
	ActionInfo    Action = "info"
	ActionPalette Action = "palette"
	ActionCopy    Action = "copy"
)

// PickResult holds the outcome of an interactive pick.
type PickResult struct {
	Hex         string // canonical picked color
	Action      Action
	CopyHex     string // palette color chosen for ActionCopy
	Format      string // value format for ActionCopy
	SaveDefault bool
	Cancelled   bool
}

// Run asks for a color and what to do with it. The caller performs the action.
func Run(cfg *config.Config) (*PickResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	styles := StylesFor(cfg.Color.Default)
	fmt.Println(styles.Logo())
	fmt.Println()

	input := cfg.Color.Default
	action := ActionInfo
	saveDefault := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Color").
				Description("6-digit hex, e.g. #3498DB").
				Value(&input).
				Validate(validateHex),
			huh.NewSelect[Action]().
				Title("Action").
				Options(actionOptions(cfg)...).
				Value(&action),
			huh.NewConfirm().
				Title("Save as default color?").
				Value(&saveDefault),
		),
	).WithTheme(getTheme(styles.Theme))

	if err := form.Run(); err != nil {
		return cancelledOr(err)
	}

	result, err := newPickResult(input, action, saveDefault)
	if err != nil {
		return nil, err
	}
	if action != ActionCopy {
		return result, nil
	}

	swatches, err := colormodel.Palette(result.Hex)
	if err != nil {
		return nil, err
	}
	copyHex := result.Hex
	format := cfg.Clipboard.Format

	copyForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which color?").
				Options(paletteOptions(swatches, styles)...).
				Value(&copyHex),
			huh.NewSelect[string]().
				Title("Format").
				Options(formatOptions(result.Hex, styles)...).
				Value(&format),
		),
	).WithTheme(getTheme(styles.Theme))

	if err := copyForm.Run(); err != nil {
		return cancelledOr(err)
	}

	result.CopyHex = copyHex
	result.Format = format
	return result, nil
}

func cancelledOr(err error) (*PickResult, error) {
	if errors.Is(err, huh.ErrUserAborted) {
		return &PickResult{Cancelled: true}, nil
	}
	return &PickResult{Cancelled: true}, err
}

func newPickResult(input string, action Action, saveDefault bool) (*PickResult, error) {
	hex, err := colormodel.Normalize(input)
	if err != nil {
		return nil, err
	}
	return &PickResult{Hex: hex, Action: action, SaveDefault: saveDefault}, nil
}

func validateHex(s string) error {
	if _, err := colormodel.Normalize(s); err != nil {
		return fmt.Errorf("enter 6 hex digits, e.g. #3498DB")
	}
	return nil
}

func actionOptions(cfg *config.Config) []huh.Option[Action] {
	options := []huh.Option[Action]{
		huh.NewOption("Show hex / rgb / hsl", ActionInfo),
		huh.NewOption("Generate palette", ActionPalette),
	}
	if cfg.Clipboard.Enabled {
		options = append(options, huh.NewOption("Copy to clipboard", ActionCopy))
	}
	return options
}

func paletteOptions(swatches []colormodel.Swatch, styles Styles) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(swatches))
	for _, s := range swatches {
		label := fmt.Sprintf("%s %s %s", Chip(s.Hex), s.Hex, styles.Muted.Render(string(s.Role)))
		options = append(options, huh.NewOption(label, s.Hex))
	}
	return options
}

// formatOptions previews each format with the picked color.
func formatOptions(hex string, styles Styles) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(colormodel.Formats))
	for _, f := range colormodel.Formats {
		label := f
		if v, err := colormodel.Format(hex, f); err == nil {
			label = fmt.Sprintf("%-4s %s", f, styles.Muted.Render(v))
		}
		options = append(options, huh.NewOption(label, f))
	}
	return options
}

// getTheme colors the form after the configured base: titles and the focus border
// in the accent, the selected option in the complement.
func getTheme(theme Theme) *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Focused.Base = lipgloss.NewStyle().BorderForeground(theme.Accent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(theme.Selection)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(ColorSubtle)

	return t
}
