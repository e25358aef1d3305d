package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var sheet string
	var vars []string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a worksheet without calculating",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			sheetPath, err := resolveSheetPath(ws, sheet)
			if err != nil {
				return err
			}

			overrides, err := parseAssignments(vars)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateWorksheet(ws.sheets, catalog.Registry{})
			if err := uc.Execute(cmd.Context(), sheetPath, domain.Vars(overrides)); err != nil {
				return err
			}

			fmt.Println("OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&sheet, "sheet", "s", "", "Worksheet name or path (required)")
	c.Flags().StringArrayVar(&vars, "var", nil, "Override a worksheet variable as name=value (repeatable)")

	_ = c.MarkFlagRequired("sheet")
	return c
}
