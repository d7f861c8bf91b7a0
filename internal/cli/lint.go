package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"manifest-lint/internal/app"
)

var (
	errorColor = color.New(color.FgRed)
	warnColor  = color.New(color.FgYellow)
)

type lintOptions struct {
	Manifest string
	Report   string
	Strict   bool
}

func newLintCommand() *cobra.Command {
	opts := lintOptions{}
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check a package manifest for errors and best-practice warnings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLint(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	cmd.Flags().StringVar(&opts.Report, "report", "", "Write a YAML lint report to this path")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Treat warnings as fatal")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}

func runLint(ctx context.Context, cmd *cobra.Command, opts lintOptions) error {
	service := app.NewService()
	result, err := service.Lint(ctx, app.LintRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		ReportPath:   resolveString(cmd, opts.Report, "report", "report"),
	})
	if err != nil {
		return err
	}
	printLintResult(result)
	if len(result.Errors) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("manifest failed validation")
	}
	if resolveBool(cmd, opts.Strict, "strict", "strict") && len(result.Warnings) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("manifest has warnings (strict mode)")
	}
	fmt.Printf("%s is valid\n", result.Manifest)
	return nil
}

func printLintResult(result app.LintResult) {
	for _, message := range result.Errors {
		_, _ = errorColor.Fprintf(os.Stderr, "error: %s\n", message)
	}
	for _, message := range result.Warnings {
		_, _ = warnColor.Fprintf(os.Stderr, "warning: %s\n", message)
	}
}
