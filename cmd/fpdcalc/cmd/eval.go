package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/govalues/fpdecimal"
	"github.com/govalues/fpdecimal/internal/calc"
)

type result struct {
	Expression string            `json:"expression" yaml:"expression"`
	Result     fpdecimal.Decimal `json:"result" yaml:"result"`
}

func newEvalCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "eval [flags] [--] EXPRESSION...",
		Short: "Evaluate a postfix expression",
		Long: `Evaluate a postfix expression. Arguments are joined with spaces
and split into tokens, so an expression may be passed as one quoted
argument or as separate tokens.

Binary operators: + - * / pow log
Unary operators:  neg abs inv sqrt ln exp

Negative numbers look like flags and must follow "--".`,
		Example: `  fpdcalc eval "1.23 4.56 + 10 *"
  fpdcalc eval 2 sqrt
  fpdcalc eval -p 2 -- -2.5 3 pow`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(v.GetBool(keyVerbose))
			if err != nil {
				return Error.New("creating logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			tokens := strings.Fields(strings.Join(args, " "))
			d, err := calc.NewEvaluator(log).EvaluateTokens(tokens)
			if err != nil {
				return err
			}
			res := result{Expression: strings.Join(tokens, " "), Result: d}
			return writeResult(cmd.OutOrStdout(), v.GetString(keyOutput), v.GetInt(keyPlaces), res)
		},
	}
}

func writeResult(w io.Writer, format string, places int, res result) error {
	if places >= 0 {
		res.Result = res.Result.Round(places)
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return Error.New("encoding json: %w", err)
		}
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(res); err != nil {
			return Error.New("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return Error.New("encoding yaml: %w", err)
		}
	default:
		var err error
		if places >= 0 {
			_, err = fmt.Fprintf(w, "%.*f\n", places, res.Result)
		} else {
			_, err = fmt.Fprintf(w, "%v\n", res.Result)
		}
		if err != nil {
			return Error.Wrap(err)
		}
	}
	return nil
}
