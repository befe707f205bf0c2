// SPDX-License-Identifier: MIT

// Package commands holds the radialgrid cobra command tree.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. RADIALGRID_NETWORK.
const envPrefix = "RADIALGRID"

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}

	return 0
}

// state is shared by every subcommand of one root.
type state struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
}

// NewRootCmd builds a fresh command tree with its own configuration.
func NewRootCmd() *cobra.Command {
	st := &state{v: viper.New()}

	root := &cobra.Command{
		Use:   "radialgrid",
		Short: "Topology checks for radial distribution networks",
		Long: `radialgrid loads a network file, checks that its closed lines form a
spanning tree rooted at the source, and answers topology questions:
which buses lose supply when a line opens, which open lines can take over,
and how every feeder fares under an N-1 sweep.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.initConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&st.cfgFile, "config", "", "config file (YAML)")
	pf.StringP("network", "n", "", "network file (YAML or JSON)")
	pf.StringP("output", "o", "json", "output format: json|yaml")
	pf.String("log-level", "warn", "log level: debug|info|warn|error")
	pf.String("log-format", "text", "log format: text|json")
	pf.Int("concurrency", 0, "parallel line outages in contingency (0 = GOMAXPROCS)")
	bindFlags(st.v, pf)

	root.AddCommand(
		newValidateCmd(st),
		newDownstreamCmd(st),
		newAlternativesCmd(st),
		newPathCmd(st),
		newContingencyCmd(st),
		newFeedersCmd(st),
		newEVsCmd(st),
		newGenerateCmd(st),
	)

	return root
}

// bindFlags exposes every flag except --config through viper, so values can
// also come from the environment or the config file.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = v.BindPFlag(f.Name, f)
	})
}

func (st *state) initConfig(cmd *cobra.Command) error {
	st.v.SetEnvPrefix(envPrefix)
	st.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	st.v.AutomaticEnv()

	if st.cfgFile != "" {
		st.v.SetConfigFile(st.cfgFile)
		st.v.SetConfigType("yaml")
		if err := st.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", st.cfgFile, err)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), st.v.GetString("log-level"), st.v.GetString("log-format"))
	if err != nil {
		return err
	}
	st.logger = logger
	if st.cfgFile != "" {
		st.logger.Debug("config loaded", "file", st.v.ConfigFileUsed())
	}

	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q (want text or json)", format)
	}
}
