// Package integrity implements the Integrity Binder (spec §4.F):
// content hashing, cache-busting file versioning, the path-to-hash
// map file, and `.comp.html` template substitution.
package integrity

import (
	"crypto/sha512"
	"encoding/base64"
	"os"
)

// FileHash returns the base64-encoded SHA-384 digest of path's
// contents, suitable for a Subresource Integrity `sha384-` value.
func FileHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha512.Sum384(data)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// SRIValue formats a hash as a full `integrity` attribute value.
func SRIValue(hash string) string {
	return "sha384-" + hash
}
