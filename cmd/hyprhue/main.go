package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/leonardotrapani/hyprhue/internal/clipboard"
	"github.com/leonardotrapani/hyprhue/internal/config"
	"github.com/leonardotrapani/hyprhue/internal/deps"
	"github.com/leonardotrapani/hyprhue/internal/notify"
	"github.com/leonardotrapani/hyprhue/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries global flags and the side-effecting dependencies that tests swap out.
type app struct {
	configPath string
	verbose    bool

	newCopier   func(clipboard.Config) clipboard.Copier
	newNotifier func(kind string) notify.Notifier
	pick        func(*config.Config) (*tui.PickResult, error)
	checkDeps   func() []deps.Status
}

func newApp() *app {
	return &app{
		newCopier:   clipboard.New,
		newNotifier: notify.New,
		pick:        tui.Run,
		checkDeps:   deps.CheckAll,
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "hyprhue",
		Short:        "Color picker, converter and palette generator for the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetFlags(log.LstdFlags)
			if a.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}
			return nil
		},
	}

	// Defaults come from a so a preset configPath survives flag registration.
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", a.configPath, "Path to config file (default: $XDG_CONFIG_HOME/hyprhue/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", a.verbose, "Log diagnostics to stderr")

	rootCmd.AddCommand(
		infoCmd(a),
		rgbCmd(a),
		hslCmd(a),
		paletteCmd(a),
		copyCmd(a),
		pickCmd(a),
		configCmd(a),
		doctorCmd(a),
	)

	return rootCmd
}

// resolveConfigPath returns the --config value or the user's config file.
func (a *app) resolveConfigPath() (string, error) {
	if a.configPath != "" {
		return a.configPath, nil
	}
	return config.GetConfigPath()
}

func (a *app) loadConfig() (*config.Config, error) {
	configPath, err := a.resolveConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return cfg, nil
}
