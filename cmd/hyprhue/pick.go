package main

import (
	"fmt"

	"github.com/leonardotrapani/hyprhue/internal/config"
	"github.com/leonardotrapani/hyprhue/internal/tui"
	"github.com/spf13/cobra"
)

func pickCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactive color picker",
		Long: `Interactive color picker.
Enter a hex color, then show its values, generate a palette from it,
or copy one of its palette colors to the clipboard.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			result, err := a.pick(cfg)
			if err != nil {
				return fmt.Errorf("picker error: %w", err)
			}
			if result.Cancelled {
				fmt.Fprintln(cmd.OutOrStdout(), "Pick cancelled.")
				return nil
			}

			return a.applyPick(cmd, cfg, result)
		},
	}
}

func (a *app) applyPick(cmd *cobra.Command, cfg *config.Config, result *tui.PickResult) error {
	w := cmd.OutOrStdout()

	switch result.Action {
	case tui.ActionPalette:
		if err := printPalette(w, cfg, outputSwatch, result.Hex); err != nil {
			return err
		}
	case tui.ActionCopy:
		if err := a.copyColor(cmd.Context(), w, cfg, result.CopyHex, result.Format); err != nil {
			return err
		}
	default:
		if err := printColor(w, cfg, outputSwatch, result.Hex); err != nil {
			return err
		}
	}

	if !result.SaveDefault {
		return nil
	}

	configPath, err := a.resolveConfigPath()
	if err != nil {
		return err
	}
	cfg.Color.Default = result.Hex
	if err := config.SaveTo(configPath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	st := tui.StylesFor(result.Hex)
	fmt.Fprintln(w, st.Success.Render("Default color set to"), st.Value.Render(result.Hex))
	return nil
}
