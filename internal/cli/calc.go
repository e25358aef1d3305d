package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/format"
	"github.com/aalvaropc/calckit/internal/machine"
)

func calcCmd() *cobra.Command {
	var sets []string
	var outFormat string

	c := &cobra.Command{
		Use:   "calc <id>",
		Short: "Run one calculator with inputs given as --set field=value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.CalculatorID(args[0])

			vals, err := parseAssignments(sets)
			if err != nil {
				return err
			}

			cfg := optionalConfig()
			res, err := newCalculate(nil).Execute(cmd.Context(), id, domain.InputSet(vals))
			if err != nil {
				if errors.Is(err, domain.ErrIncompleteInput) {
					return fmt.Errorf("%w (fields: %s)", err, fieldNames(id))
				}
				return err
			}

			f := outFormat
			if strings.TrimSpace(f) == "" {
				f = cfg.Defaults.Format
			}
			return printResult(os.Stdout, id, res, cfg.Defaults.Precision, f)
		},
	}

	c.Flags().StringArrayVar(&sets, "set", nil, "Input value as field=value (repeatable)")
	c.Flags().StringVar(&outFormat, "format", "", "Output format: pretty|json (default from calckit.yaml)")
	return c
}

func printResult(w io.Writer, id domain.CalculatorID, res domain.Result, precision int, outFormat string) error {
	switch outFormat {
	case "json":
		return writeJSON(w, domain.Wrap(id, res))
	case "pretty", "":
		if d, err := catalog.Lookup(id); err == nil {
			fmt.Fprintf(w, "%s\n\n", d.Name)
		}
		fmt.Fprint(w, format.Text(res, precision))
		return nil
	default:
		return unsupportedFormat(outFormat)
	}
}

func fieldNames(id domain.CalculatorID) string {
	fields := catalog.Form(id)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

func evalCmd() *cobra.Command {
	var outFormat string

	c := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an arithmetic expression (+ - × ÷ and parentheses)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := strings.Join(args, " ")

			cfg := optionalConfig()
			res, err := newCalculate(nil).Execute(cmd.Context(), domain.CalcScientific, domain.InputSet{"expression": src})
			if err != nil {
				return err
			}

			f := outFormat
			if strings.TrimSpace(f) == "" {
				f = cfg.Defaults.Format
			}
			if err := printResult(os.Stdout, domain.CalcScientific, res, cfg.Defaults.Precision, f); err != nil {
				return err
			}
			if rec, ok := res.(domain.ExpressionError); ok {
				return fmt.Errorf("%s: %q", rec.Message, rec.Expression)
			}
			return nil
		},
	}

	c.Flags().StringVar(&outFormat, "format", "", "Output format: pretty|json (default from calckit.yaml)")
	return c
}

// keypadState is the JSON shape of the keys command.
type keypadState struct {
	Display  string `json:"display"`
	Previous string `json:"previous"`
	Pending  string `json:"pending"`
	Memory   string `json:"memory"`
}

func keysCmd() *cobra.Command {
	var outFormat string

	c := &cobra.Command{
		Use:   "keys <key>...",
		Short: "Press scientific keypad keys in order and print the display",
		Long: "Press scientific keypad keys in order and print the display.\n\n" +
			"Keys: digits, . + - × ÷ = C CE back M+ M- MR MC sin cos tan ln log sqrt square inverse pi e factorial percent negate",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			m := machine.New()
			if err := m.PressAll(args...); err != nil {
				return err
			}
			return printKeypad(os.Stdout, m, resolveFormat(outFormat))
		},
	}

	c.Flags().StringVar(&outFormat, "format", "", "Output format: pretty|json (default from calckit.yaml)")
	return c
}

func printKeypad(w io.Writer, m *machine.Machine, outFormat string) error {
	switch outFormat {
	case "json":
		return writeJSON(w, keypadState{
			Display:  m.Display(),
			Previous: m.Previous(),
			Pending:  string(m.Pending()),
			Memory:   m.MemoryText(),
		})
	case "pretty", "":
		if p := m.Pending(); p != "" {
			fmt.Fprintf(w, "%s %s\n", m.Previous(), p)
		}
		fmt.Fprintln(w, m.Display())
		return nil
	default:
		return unsupportedFormat(outFormat)
	}
}
