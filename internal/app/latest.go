package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"manifest-lint/internal/adapters"
	"manifest-lint/internal/core"
	"manifest-lint/internal/ports"
)

// Latest resolves the highest known version for every required package
// through the injected package repository. Packages with no release
// versions in the index get an empty Latest.
func (s Service) Latest(ctx context.Context, req LatestRequest) (LatestResult, error) {
	path := strings.TrimSpace(req.ManifestPath)
	if path == "" {
		return LatestResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	indexPath := strings.TrimSpace(req.IndexPath)
	if indexPath == "" {
		return LatestResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package index path is required")
	}
	manifest, _, err := s.Manifests.LoadManifest(path)
	if err != nil {
		return LatestResult{}, err
	}
	links, err := core.BuildLinks(manifest)
	if err != nil {
		return LatestResult{}, err
	}
	var repository ports.RepositoryPort = adapters.NewPackageIndexFileAdapter(indexPath)
	var entries []LatestEntry
	for _, link := range links {
		assert.NotEmpty(ctx, link.Target, "link target must be set")
		entry := LatestEntry{
			Package:    link.Target,
			Constraint: link.Constraint.String(),
		}
		versions, err := repository.AvailableVersions(link.Target)
		if err != nil {
			return LatestResult{}, err
		}
		if latest, err := core.LatestVersion(versions); err == nil {
			entry.Latest = latest
			entry.Satisfied = core.Satisfies(link.Constraint, latest)
		}
		entries = append(entries, entry)
	}
	log.Ctx(ctx).Debug().
		Str("manifest", manifest.Name).
		Int("packages", len(entries)).
		Msg("latest versions resolved")
	return LatestResult{Manifest: manifest.Name, Entries: entries}, nil
}
