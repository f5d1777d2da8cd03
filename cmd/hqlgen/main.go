// hqlgen generates HQL schema and query source from a YAML entity model,
// validates models, and re-formats HQL files.
//
// Usage:
//
//	hqlgen generate -model model.yaml [-out dir]
//	hqlgen validate -model model.yaml
//	hqlgen fmt [-w] file.hql
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nodfans/helixdb-explorer-sub000/hqlfmt"
	"github.com/nodfans/helixdb-explorer-sub000/hqlgen"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hqlgen",
		Short:         "HQL source generator and formatter",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(generateCmd(), validateCmd(), fmtCmd(), &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hqlgen %s\n", version)
		},
	})
	return cmd
}

func generateCmd() *cobra.Command {
	var modelPath, outDir string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate schema.hql and queries.hql from a model",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := hqlgen.LoadFile(modelPath)
			if err != nil {
				return err
			}
			diags := hqlgen.Validate(doc.Entities)
			printDiagnostics(doc.Entities, diags)
			if hqlgen.HasErrors(diags) {
				return errors.New("model has validation errors")
			}
			schema := hqlgen.GenerateSchema(doc.Entities)
			queries := hqlgen.GenerateQueries(doc.Entities, doc.Config)
			if err := writeSource(filepath.Join(outDir, "schema.hql"), schema); err != nil {
				return err
			}
			return writeSource(filepath.Join(outDir, "queries.hql"), queries)
		},
	}
	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "Model file path (YAML)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func validateCmd() *cobra.Command {
	var modelPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a model and report diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := hqlgen.LoadFile(modelPath)
			if err != nil {
				return err
			}
			diags := hqlgen.Validate(doc.Entities)
			printDiagnostics(doc.Entities, diags)
			if hqlgen.HasErrors(diags) {
				return errors.New("model has validation errors")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&modelPath, "model", "m", "", "Model file path (YAML)")
	_ = cmd.MarkFlagRequired("model")
	return cmd
}

func fmtCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-format an HQL source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			formatted := hqlfmt.Format(string(data)) + "\n"
			if !write {
				fmt.Print(formatted)
				return nil
			}
			if err := os.WriteFile(args[0], []byte(formatted), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", args[0], err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write result back to the file")
	return cmd
}

// printDiagnostics reports findings to stderr, addressed by entity name when
// the ID resolves.
func printDiagnostics(entities []hqlgen.Entity, diags []hqlgen.Diagnostic) {
	names := make(map[string]string, len(entities))
	for _, e := range entities {
		names[e.ID] = e.Name
	}
	for _, d := range diags {
		subject := names[d.EntityID]
		if subject == "" {
			subject = d.EntityID
		}
		fmt.Fprintf(os.Stderr, "%s: %s: %s", d.Severity, subject, d.Message)
		if d.Suggestion != "" {
			fmt.Fprintf(os.Stderr, " (%s)", d.Suggestion)
		}
		fmt.Fprintln(os.Stderr)
	}
}

func writeSource(path, content string) error {
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
