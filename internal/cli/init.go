package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/calckit/internal/infra/fsworkspace"
	"github.com/aalvaropc/calckit/internal/infra/workspacefinder"
	"github.com/aalvaropc/calckit/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a calckit workspace with a demo worksheet",
		RunE: func(_ *cobra.Command, _ []string) error {
			root := path
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}
			root, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Printf("Initialized calckit workspace in %s\n", root)
			fmt.Printf("Config:    %s\n", filepath.Join(root, workspacefinder.ConfigFile))
			fmt.Println("Try:       calckit run --sheet demo")
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "Directory to initialize (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite template files that already exist")
	return c
}
