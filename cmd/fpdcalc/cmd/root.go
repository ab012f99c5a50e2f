// Package cmd implements the fpdcalc command line.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/govalues/fpdecimal"
)

// Error is the class of configuration and output errors.
var Error = errs.Class("fpdcalc")

const (
	keyVerbose = "verbose"
	keyOutput  = "output"
	keyPlaces  = "places"
)

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns the fpdcalc command tree.
// Settings are taken from flags, then FPDCALC_* environment variables,
// then the YAML file given by --config.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "fpdcalc",
		Short: "Fixed-point decimal calculator",
		Long: `fpdcalc evaluates postfix expressions over signed decimals
with 18 digits after the decimal point and a 256-bit coefficient.

Arithmetic truncates towards zero. Transcendental functions
(sqrt, ln, log, exp, pow) are accurate to a few units in the last place.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, v)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (YAML)")
	flags.BoolP(keyVerbose, "v", false, "log every applied operator")
	flags.StringP(keyOutput, "o", "text", "output format: text, json or yaml")
	flags.IntP(keyPlaces, "p", -1, fmt.Sprintf("round the result to this many places, 0 to %v (-1 prints it exactly)", fpdecimal.Scale))
	bindFlags(v, flags, keyVerbose, keyOutput, keyPlaces)
	v.SetEnvPrefix("FPDCALC")
	v.AutomaticEnv()

	root.AddCommand(newEvalCommand(v))
	root.AddCommand(newVersionCommand())
	return root
}

// bindFlags makes flags override the environment and the config file.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
}

func loadConfig(cmd *cobra.Command, v *viper.Viper) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return Error.Wrap(err)
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Error.New("reading config %q: %w", path, err)
		}
	}
	switch out := v.GetString(keyOutput); out {
	case "text", "json", "yaml":
	default:
		return Error.New("unknown output format %q", out)
	}
	if p := v.GetInt(keyPlaces); p < -1 || p > fpdecimal.Scale {
		return Error.New("places %v out of range [-1, %v]", p, fpdecimal.Scale)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
