package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/templatetools/jinjaconv/pkg/jinja2"
	"github.com/templatetools/jinjaconv/pkg/starlark"
)

var contextFile string

var rootCmd = cobra.Command{
	Use:   "jinjaconv",
	Short: "Render templates against hierarchical data contexts",
}

// loadContext reads the context file given with --context. YAML and JSON
// documents are decoded directly; a .star file is executed and its
// globals become the context. No flag means an empty context.
func loadContext() (jinja2.Context, error) {
	if contextFile == "" {
		return jinja2.Context{}, nil
	}
	switch ext := strings.ToLower(filepath.Ext(contextFile)); ext {
	case ".yaml", ".yml", ".json":
		raw, err := os.ReadFile(contextFile)
		if err != nil {
			return nil, fmt.Errorf("reading context file: %w", err)
		}
		return jinja2.DecodeContext(raw)
	case ".star":
		e := starlark.NewEvaluator()
		if err := e.ExecFile(contextFile, nil); err != nil {
			return nil, err
		}
		return e.Context(), nil
	default:
		return nil, fmt.Errorf("unsupported context file type %q (want .yaml, .yml, .json or .star)", ext)
	}
}

var renderCmd = cobra.Command{
	Use:   "render [template]",
	Short: "Render a template file to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("exactly one template file is required")
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}
		ctx, err := loadContext()
		if err != nil {
			return err
		}
		out, err := jinja2.NewConverter().Convert(string(src), ctx)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var checkCmd = cobra.Command{
	Use:   "check [template...]",
	Short: "Check that template files parse",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("no template files specified")
		}
		failed := 0
		for _, name := range args {
			src, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("reading template: %w", err)
			}
			if err := jinja2.TemplateString(src).Validate(); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				continue
			}
			fmt.Printf("%s: ok\n", name)
		}
		if failed > 0 {
			return fmt.Errorf("%d templates failed to parse", failed)
		}
		return nil
	},
}

var astCmd = cobra.Command{
	Use:   "ast [template]",
	Short: "Print the parsed node chain of a template file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("exactly one template file is required")
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}
		root, err := jinja2.Parse(string(src))
		if err != nil {
			return err
		}
		fmt.Print(jinja2.Pretty(root))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&contextFile, "context", "", "Context file (.yaml, .yml, .json or .star)")
	rootCmd.AddCommand(&renderCmd)
	rootCmd.AddCommand(&checkCmd)
	rootCmd.AddCommand(&astCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
