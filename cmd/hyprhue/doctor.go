package main

import (
	"fmt"

	"github.com/leonardotrapani/hyprhue/internal/config"
	"github.com/leonardotrapani/hyprhue/internal/deps"
	"github.com/leonardotrapani/hyprhue/internal/tui"
	"github.com/spf13/cobra"
)

func doctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check for clipboard and notification helpers",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			statuses := a.checkDeps()

			// doctor still runs when the config is broken
			base := config.DefaultColor
			if cfg, err := a.loadConfig(); err == nil {
				base = cfg.Color.Default
			}
			st := tui.StylesFor(base)

			fmt.Fprintln(w, st.Header.Render("External tools"))
			for _, s := range statuses {
				name := st.Label.Render(fmt.Sprintf("%-12s", s.Name))
				if !s.Installed {
					fmt.Fprintf(w, "  %s %s %s\n", st.Error.Render("✗"), name, st.Muted.Render(s.Purpose+" (not found)"))
					continue
				}
				detail := s.Path
				if s.Version != "" {
					detail = fmt.Sprintf("%s (%s)", s.Path, s.Version)
				}
				fmt.Fprintf(w, "  %s %s %s %s\n", st.Success.Render("✓"), name, s.Purpose, st.Hint.Render(detail))
			}

			fmt.Fprintln(w)
			if !deps.HasClipboard(statuses) {
				fmt.Fprintln(w, st.Warning.Render("No clipboard helper found: install wl-clipboard, xclip, or xsel to use copy."))
			} else {
				fmt.Fprintln(w, st.Success.Render("Clipboard available."))
			}
			return nil
		},
	}
}
