package ports

import "manifest-lint/internal/types"

type ManifestPort interface {
	// LoadManifest parses a manifest file and returns the raw bytes
	// alongside for schema validation.
	LoadManifest(path string) (types.Manifest, []byte, error)
}
