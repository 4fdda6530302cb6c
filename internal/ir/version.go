package ir

// Version constants for the declaration record and generator.
const (
	// DeclVersion is the Decl schema version.
	DeclVersion = "1"

	// GeneratorVersion is the ifgen generator version.
	GeneratorVersion = "0.1.0"
)
