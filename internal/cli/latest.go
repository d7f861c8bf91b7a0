package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"manifest-lint/internal/app"
)

type latestOptions struct {
	Manifest string
	Index    string
}

func newLatestCommand() *cobra.Command {
	opts := latestOptions{}
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the latest known version for each required package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLatest(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	cmd.Flags().StringVar(&opts.Index, "index", "", "Package index file path")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("index", cmd.Flags().Lookup("index"))
	return cmd
}

func runLatest(ctx context.Context, cmd *cobra.Command, opts latestOptions) error {
	service := app.NewService()
	result, err := service.Latest(ctx, app.LatestRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		IndexPath:    resolveString(cmd, opts.Index, "index", "index"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("requirements of %s:\n", result.Manifest)
	for _, entry := range result.Entries {
		var state string
		switch {
		case entry.Latest == "":
			state = "no releases in index"
		case entry.Satisfied:
			state = "up to date"
		default:
			state = "outside constraint"
		}
		latest := entry.Latest
		if latest == "" {
			latest = "-"
		}
		fmt.Printf("- %s %s: latest %s (%s)\n", entry.Package, entry.Constraint, latest, state)
	}
	return nil
}
