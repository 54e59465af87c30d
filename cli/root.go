// Package cli wires the commentrender commands.
package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/heathj/commentrender/config"
)

type ctxKey string

const envKey ctxKey = "env"

// env carries what every subcommand needs once config is loaded.
type env struct {
	cfg config.Config
	log *logrus.Logger
}

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command. Flags bound here and in the
// subcommands override config file and environment values.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "commentrender",
		Short:         "Render comment markup inside HTML pages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			cfg, err := config.FromViper(v)
			if err != nil {
				return errors.Wrap(err, "invalid config")
			}
			e := &env{cfg: cfg, log: cfg.Logger()}
			e.log.SetOutput(cmd.ErrOrStderr())
			cmd.SetContext(context.WithValue(cmd.Context(), envKey, e))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml|json)")
	cmd.PersistentFlags().String("log-level", "", "log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().String("marker", "", "class name identifying comment elements")
	cmd.PersistentFlags().String("sanitize", "", "policy applied to comment text (none|ugc|strict)")
	cmd.PersistentFlags().Bool("keep-scripts", false, "keep <script> elements found in comments")
	cmd.PersistentFlags().Bool("scripting", false, "parse with the scripting flag set")
	bindFlags(v, cmd.PersistentFlags().Lookup, map[string]string{
		"log_level":    "log-level",
		"marker":       "marker",
		"sanitize":     "sanitize",
		"keep_scripts": "keep-scripts",
		"scripting":    "scripting",
	})

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newServeCmd(v))

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

func getEnv(cmd *cobra.Command) *env {
	e, _ := cmd.Context().Value(envKey).(*env)
	return e
}
