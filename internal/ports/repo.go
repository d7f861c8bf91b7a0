package ports

type RepositoryPort interface {
	AvailableVersions(name string) ([]string, error)
}
