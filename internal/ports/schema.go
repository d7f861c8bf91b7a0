package ports

type SchemaPort interface {
	// ValidateManifest checks raw manifest bytes against the manifest
	// schema and returns one message per structural problem. The error
	// return is for undecodable input or schema compilation failures,
	// not for validation findings.
	ValidateManifest(raw []byte) ([]string, error)
}
