package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/calckit/internal/calc"
	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
)

func listCmd() *cobra.Command {
	var category string
	var search string
	var featured bool
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List calculators by category",
		RunE: func(_ *cobra.Command, _ []string) error {
			cats, err := filterCatalog(category, search, featured)
			if err != nil {
				return err
			}
			return printCatalog(os.Stdout, cats, resolveFormat(format))
		},
	}

	c.Flags().StringVar(&category, "category", "", "Only list one category (e.g. financial)")
	c.Flags().StringVarP(&search, "search", "q", "", "Keep calculators whose name or description contains this text")
	c.Flags().BoolVar(&featured, "featured", false, "Only list featured calculators")
	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from calckit.yaml)")
	return c
}

func filterCatalog(category, search string, featured bool) ([]domain.Category, error) {
	cats := catalog.Search(search)

	if category != "" {
		if _, err := catalog.Category(category); err != nil {
			return nil, err
		}
		var only []domain.Category
		for _, c := range cats {
			if c.ID == category {
				only = append(only, c)
			}
		}
		cats = only
	}

	if featured {
		var out []domain.Category
		for _, c := range cats {
			var keep []domain.Descriptor
			for _, d := range c.Calculators {
				if d.Featured {
					keep = append(keep, d)
				}
			}
			if len(keep) > 0 {
				c.Calculators = keep
				out = append(out, c)
			}
		}
		cats = out
	}

	if cats == nil {
		cats = []domain.Category{}
	}
	return cats, nil
}

func printCatalog(w io.Writer, cats []domain.Category, format string) error {
	switch format {
	case "json":
		return writeJSON(w, cats)
	case "pretty", "":
		if len(cats) == 0 {
			fmt.Fprintln(w, "(no calculators found)")
			return nil
		}
		for i, c := range cats {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s (%s)\n", c.Name, c.ID)
			for _, d := range c.Calculators {
				mark := " "
				if d.Featured {
					mark = "★"
				}
				fmt.Fprintf(w, "  %s %-22s %s\n", mark, d.ID, d.Name)
			}
		}
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func showCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a calculator and the inputs it takes",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id := domain.CalculatorID(args[0])
			d, err := catalog.Lookup(id)
			if err != nil {
				return err
			}
			available := calc.NewDefaultEngine().Has(id)
			return printDescriptor(os.Stdout, d, catalog.Form(id), available, resolveFormat(format))
		},
	}

	c.Flags().StringVar(&format, "format", "", "Output format: pretty|json (default from calckit.yaml)")
	return c
}

func printDescriptor(w io.Writer, d domain.Descriptor, fields []domain.Field, available bool, format string) error {
	switch format {
	case "json":
		return writeJSON(w, struct {
			domain.Descriptor
			Fields    []domain.Field `json:"fields"`
			Available bool           `json:"available"`
		}{d, fields, available})
	case "pretty", "":
		fmt.Fprintf(w, "%s %s\n", d.Icon, d.Name)
		fmt.Fprintf(w, "ID:       %s\n", d.ID)
		fmt.Fprintf(w, "Category: %s\n", d.Category)
		fmt.Fprintf(w, "About:    %s\n", d.Description)
		if !available {
			fmt.Fprintf(w, "\n%s\n", calc.ComingSoonMessage)
			return nil
		}
		if len(fields) > 0 {
			fmt.Fprintln(w, "\nInputs:")
			for _, f := range fields {
				line := fmt.Sprintf("  %-12s %s (%s)", f.Name, f.Label, f.Type)
				if len(f.Choices) > 0 {
					line += ": " + strings.Join(f.Choices, ", ")
				}
				fmt.Fprintln(w, line)
			}
		}
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func unsupportedFormat(format string) error {
	return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
}

// resolveFormat falls back to the workspace default when the flag is empty.
func resolveFormat(flag string) string {
	if f := strings.TrimSpace(flag); f != "" {
		return f
	}
	return optionalConfig().Defaults.Format
}
