package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/leonardotrapani/hyprhue/internal/colormodel"
	"github.com/leonardotrapani/hyprhue/internal/config"
	"github.com/leonardotrapani/hyprhue/internal/render"
	"github.com/spf13/cobra"
)

const outputSwatch = "swatch"

func infoCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "info [hex]",
		Short: "Show a color as hex, rgb and hsl",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			hex := cfg.Color.Default
			if len(args) == 1 {
				hex = args[0]
			}
			return printColor(cmd.OutOrStdout(), cfg, outputFormat(cfg, format), hex)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: swatch, hex, rgb, or hsl (default from config)")
	return cmd
}

func rgbCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rgb R G B",
		Short: "Convert an RGB triple (0-255 each)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			var ch [3]int
			for i, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid channel %q: %w", arg, err)
				}
				if v < 0 || v > 255 {
					return fmt.Errorf("invalid channel %d: must be between 0 and 255", v)
				}
				ch[i] = v
			}

			hex := colormodel.RGBToHex(colormodel.RGB{R: ch[0], G: ch[1], B: ch[2]})
			return printColor(cmd.OutOrStdout(), cfg, outputFormat(cfg, format), hex)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: swatch, hex, rgb, or hsl (default from config)")
	return cmd
}

func hslCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "hsl H S L",
		Short: "Convert an HSL triple (hue in degrees, saturation and lightness in percent)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			var v [3]float64
			for i, arg := range args {
				f, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid component %q: %w", arg, err)
				}
				v[i] = f
			}

			hex := colormodel.HSLToHex(v[0], v[1], v[2])
			return printColor(cmd.OutOrStdout(), cfg, outputFormat(cfg, format), hex)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: swatch, hex, rgb, or hsl (default from config)")
	return cmd
}

func paletteCmd(a *app) *cobra.Command {
	var format string
	var watch bool

	cmd := &cobra.Command{
		Use:   "palette [hex]",
		Short: "Generate complementary, triadic and analogous colors",
		Long: `Generate a harmonious palette from a base color.
The palette is, in order: the base, its complement, two triadic colors
and two analogous colors (+30 and -30 degrees), all sharing the base's
saturation and lightness.

With --watch and no color argument, the palette is redrawn whenever
color.default changes in the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				if len(args) == 1 {
					return fmt.Errorf("--watch follows color.default and takes no color argument")
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return a.watchPalette(ctx, cmd.OutOrStdout(), format)
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			hex := cfg.Color.Default
			if len(args) == 1 {
				hex = args[0]
			}
			return printPalette(cmd.OutOrStdout(), cfg, outputFormat(cfg, format), hex)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: swatch, hex, rgb, or hsl (default from config)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Redraw when the config's default color changes")
	return cmd
}

func (a *app) watchPalette(ctx context.Context, w io.Writer, format string) error {
	configPath, err := a.resolveConfigPath()
	if err != nil {
		return err
	}

	manager, err := config.NewManager(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	updates := manager.Subscribe()
	if err := manager.StartWatching(ctx); err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	defer manager.Stop()

	cfg := manager.GetConfig()
	if err := printPalette(w, cfg, outputFormat(cfg, format), cfg.Color.Default); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case next, ok := <-updates:
			if !ok {
				return nil
			}
			if next.Color.Default == cfg.Color.Default && next.Output == cfg.Output {
				continue
			}
			cfg = next
			log.Printf("Palette: redrawing for %s", cfg.Color.Default)
			fmt.Fprintln(w)
			if err := printPalette(w, cfg, outputFormat(cfg, format), cfg.Color.Default); err != nil {
				return err
			}
		}
	}
}

func copyCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "copy [hex]",
		Short: "Copy a color to the clipboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			hex := cfg.Color.Default
			if len(args) == 1 {
				hex = args[0]
			}
			if format == "" {
				format = cfg.Clipboard.Format
			}
			return a.copyColor(cmd.Context(), cmd.OutOrStdout(), cfg, hex, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Value format: hex, rgb, or hsl (default from config)")
	return cmd
}

func (a *app) copyColor(ctx context.Context, w io.Writer, cfg *config.Config, hex, format string) error {
	value, err := colormodel.Format(hex, format)
	if err != nil {
		return err
	}

	notifier := a.newNotifier(cfg.NotifierType())
	copier := a.newCopier(cfg.ToClipboardConfig())
	if err := copier.Copy(ctx, value); err != nil {
		notifier.Error(err.Error())
		return err
	}

	notifier.Copied(value)
	fmt.Fprintf(w, "Copied %s\n", value)
	return nil
}

// outputFormat prefers the flag value over the configured one.
func outputFormat(cfg *config.Config, flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Output.Format
}

func printColor(w io.Writer, cfg *config.Config, format, hex string) error {
	if format != outputSwatch {
		value, err := colormodel.Format(hex, format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, value)
		return err
	}

	info, err := colormodel.Describe(hex)
	if err != nil {
		return err
	}
	r, err := render.New(w, cfg.Output.ColorProfile)
	if err != nil {
		return err
	}
	return r.Println(r.Info(info))
}

func printPalette(w io.Writer, cfg *config.Config, format, hex string) error {
	swatches, err := colormodel.Palette(hex)
	if err != nil {
		return err
	}

	if format != outputSwatch {
		for _, s := range swatches {
			value, err := colormodel.Format(s.Hex, format)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%-13s %s\n", s.Role, value); err != nil {
				return err
			}
		}
		return nil
	}

	r, err := render.New(w, cfg.Output.ColorProfile)
	if err != nil {
		return err
	}
	return r.Println(r.Palette(swatches))
}
