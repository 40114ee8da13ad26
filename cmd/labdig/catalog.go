package main

import (
	"fmt"

	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/catalog"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/cli"
	"github.com/Rekha-shivaraj/Lab-report-digitization/internal/config"
	"github.com/spf13/cobra"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and manage the test catalog",
		Long: `The test catalog drives extraction: each entry names a test, its
recognized synonyms, unit, reference range and plausibility envelope.
Export the built-in catalog to YAML, edit it, and point analyze at
your copy with --catalog.`,
	}

	cmd.AddCommand(catalogListCmd())
	cmd.AddCommand(catalogValidateCmd())
	cmd.AddCommand(catalogExportCmd())

	return cmd
}

func catalogListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalogPath, _ := cmd.Flags().GetString("catalog")

			defs, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			fmt.Println(cli.TitleStyle.Render("Test Catalog"))
			for _, def := range defs {
				fmt.Printf("%-22s  %-14s  normal %s\n",
					cli.BoldStyle.Render(def.Name),
					def.Unit,
					def.ReferenceRange(),
				)
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  synonyms: %v  plausible: %g-%g",
					def.Synonyms, def.PlausibleMin, def.PlausibleMax)))
			}
			fmt.Printf("\n%d tests\n", len(defs))
			return nil
		},
	}

	cmd.Flags().String("catalog", "", "path to a custom catalog YAML file (default: built-in)")

	return cmd
}

func catalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a catalog YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			defs, err := catalog.Load(config.ExpandPath(args[0]))
			if err != nil {
				return err
			}
			fmt.Printf("%s is valid: %d tests\n", args[0], len(defs))
			return nil
		},
	}
}

func catalogExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the built-in catalog to a YAML file for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := config.ExpandPath(args[0])
			if err := catalog.Save(path, catalog.Builtin()); err != nil {
				return err
			}
			fmt.Printf("Wrote built-in catalog to %s\n", path)
			return nil
		},
	}
}
