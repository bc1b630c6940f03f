// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command moo inspects MOO CPU test-vector containers.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ezrec/moo/config"
	"github.com/ezrec/moo/container"
	"github.com/ezrec/moo/envelope"
	"github.com/ezrec/moo/revocation"
	"github.com/ezrec/moo/scan"
	"github.com/ezrec/moo/translate"
)

// app is the state shared by the sub-commands of one invocation.
type app struct {
	verbose        bool
	configPath     string
	revocationPath string

	cfg     *config.Config
	logger  *zap.Logger
	revoked *revocation.Set
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "moo", "config.yaml")
}

func (a *app) setup(cmd *cobra.Command, args []string) (err error) {
	a.cfg, err = config.Load(a.configPath)
	if err != nil {
		return
	}

	if len(a.cfg.Locale) != 0 {
		err = translate.SetLanguage(a.cfg.Locale)
		if err != nil {
			return
		}
	}

	a.logger, err = a.cfg.Logger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	path := a.revocationPath
	if len(path) == 0 {
		path = a.cfg.Revocation.Path
	}
	if len(path) != 0 {
		a.revoked, err = revocation.LoadFile(path)
		if err != nil {
			return
		}
		a.logger.Debug("revocation list", zap.String("path", path), zap.Int("hashes", a.revoked.Len()))
	}

	return
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// load reads and decodes one container file.
func (a *app) load(path string) (file *container.File, kind envelope.Kind, err error) {
	data, kind, err := envelope.ReadFile(path)
	if err != nil {
		return
	}

	dec := &container.Decoder{Logger: a.logger.With(zap.String("path", path))}
	file, err = dec.Decode(data)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}

// scanner opens a working set rooted at path, with the configured workers.
func (a *app) scanner(path string) (sc *scan.Scanner, ws *scan.WorkingSet, err error) {
	ws, err = scan.Open(path, a.cfg.Scan.Pattern)
	if err != nil {
		return
	}

	sc = &scan.Scanner{
		Logger:  a.logger,
		Workers: a.cfg.Scan.Workers,
	}

	return
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "moo",
		Short: "Inspect MOO CPU test-vector containers",
		Long: `moo decodes MOO test-vector containers: per-instruction CPU tests with
initial and final register and memory state, and a cycle-by-cycle bus trace.

Containers may be raw, gzip or xz compressed.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", defaultConfigPath(), "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&a.revocationPath, "revocation", "r", "", "Revocation list (overrides the configuration)")

	rootCmd.AddCommand(
		a.infoCmd(),
		a.showCmd(),
		a.findCmd(),
		a.selectCmd(),
		a.statsCmd(),
		a.revokedCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
