package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"manifest-lint/internal/shared"
	"manifest-lint/internal/types"
)

type PackageIndexFileAdapter struct {
	Path   string
	cached types.PackageIndexFile
	loaded bool
}

func NewPackageIndexFileAdapter(path string) *PackageIndexFileAdapter {
	return &PackageIndexFileAdapter{Path: path}
}

func (a *PackageIndexFileAdapter) AvailableVersions(name string) ([]string, error) {
	index, err := a.load()
	if err != nil {
		return nil, err
	}
	if versions, ok := index.Packages[name]; ok && len(versions) > 0 {
		return versions, nil
	}
	normalized := shared.NormalizePackageName(name)
	if normalized != name {
		return index.Packages[normalized], nil
	}
	return index.Packages[name], nil
}

func (a *PackageIndexFileAdapter) load() (types.PackageIndexFile, error) {
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return types.PackageIndexFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package index file not found").
			WithCause(err)
	}
	var index types.PackageIndexFile
	if err := yaml.Unmarshal(data, &index); err != nil {
		return types.PackageIndexFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid package index format").
			WithCause(err)
	}
	if index.Packages == nil {
		index.Packages = map[string][]string{}
	}
	a.cached = index
	a.loaded = true
	return index, nil
}
