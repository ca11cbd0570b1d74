package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstswap/core"
	"github.com/katalvlaran/mstswap/internal/demo"
	"github.com/katalvlaran/mstswap/internal/graphfile"
	"github.com/katalvlaran/mstswap/internal/report"
	"github.com/katalvlaran/mstswap/mst"
)

// Configuration keys shared by flags, environment (MSTSWAP_<KEY>) and config file.
const (
	keyGraph   = "graph"
	keyRemove  = "remove"
	keyMethod  = "method"
	keyRoot    = "root"
	keyVerbose = "verbose"
)

const envPrefix = "MSTSWAP"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds the mstswap command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "mstswap",
		Short: "MST edge removal and replacement",
		Long: `mstswap builds a Minimum Spanning Tree, removes one of its edges and
reconnects the two halves with the lightest edge that crosses between them.

Without --graph the built-in six-vertex reference graph is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, v)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default $HOME/.mstswap.yaml)")
	pf.BoolP(keyVerbose, "v", false, "enable debug logging on stderr")
	pf.String(keyGraph, "", "YAML graph file (default: built-in reference graph)")

	f := rootCmd.Flags()
	f.Int(keyRemove, demo.MiddleEdge, "MST index of the edge to remove (-1 picks the middle edge)")
	f.String(keyMethod, mst.MethodKruskal, "MST algorithm: kruskal or prim")
	f.Int(keyRoot, 0, "start vertex for prim")

	for _, key := range []string{keyVerbose, keyGraph} {
		_ = v.BindPFlag(key, pf.Lookup(key))
	}
	for _, key := range []string{keyRemove, keyMethod, keyRoot} {
		_ = v.BindPFlag(key, f.Lookup(key))
	}

	rootCmd.AddCommand(newExportCmd(v))

	return rootCmd
}

// initConfig layers config file and environment under the flags.
// A missing default config file is not an error; a missing --config file is.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		cfgFile = filepath.Join(home, ".mstswap.yaml")
		if _, err := os.Stat(cfgFile); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config %s: %w", cfgFile, err)
	}

	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadGraph reads path, or returns the reference graph when path is empty.
func loadGraph(path string, logger *slog.Logger) (*core.Graph, error) {
	if path == "" {
		logger.Debug("using reference graph")
		return graphfile.Reference(), nil
	}

	return graphfile.Load(path, logger)
}

func runDemo(cmd *cobra.Command, v *viper.Viper) error {
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool(keyVerbose))

	g, err := loadGraph(v.GetString(keyGraph), logger)
	if err != nil {
		return err
	}

	cfg := demo.Config{
		Method: v.GetString(keyMethod),
		Root:   v.GetInt(keyRoot),
		Remove: v.GetInt(keyRemove),
	}
	logger.Debug("configuration", "method", cfg.Method, "root", cfg.Root, "remove", cfg.Remove,
		"config_file", v.ConfigFileUsed())

	return demo.Run(g, cfg, report.New(cmd.OutOrStdout()), logger)
}
