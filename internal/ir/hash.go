package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainDeclarations = "ifgen/declarations/v1"
	DomainArtifact     = "ifgen/artifact/v1"
)

// renderNamespace is the UUIDv5 namespace for render ids.
var renderNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/roach88/ifgen/render"))

// hashWithDomain computes SHA-256 with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Fingerprint computes the content-addressed identity of a declaration
// sequence for a named interface. Two catalogs that declare the same
// things in the same order share a fingerprint.
func Fingerprint(interfaceName string, decls []Decl) (string, error) {
	arr := make(Array, len(decls))
	for i, d := range decls {
		arr[i] = d.Canonical()
	}
	obj := Object{
		"interface":    String(interfaceName),
		"declarations": arr,
		"version":      String(DeclVersion),
	}

	canonical, err := MarshalCanonical(obj)
	if err != nil {
		return "", fmt.Errorf("Fingerprint: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainDeclarations, canonical), nil
}

// ArtifactHash computes the identity of rendered text.
func ArtifactHash(text string) string {
	return hashWithDomain(DomainArtifact, []byte(text))
}

// RenderID derives a stable UUIDv5 for one render: the same declarations
// rendered in the same mode to the same text always get the same id.
func RenderID(fingerprint, mode, artifactHash string) string {
	name := fingerprint + "\x00" + mode + "\x00" + artifactHash
	return uuid.NewSHA1(renderNamespace, []byte(name)).String()
}
