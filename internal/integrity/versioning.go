package integrity

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/brinegen/staticgen/internal/cerrors"
)

// Mode selects how a versioned asset's filename is cache-busted.
type Mode string

const (
	// ModeMD5 renames the file to its own content hash: the best
	// option, since it only forces a reload when content changes.
	ModeMD5 Mode = "md5"
	// ModeGit renames the file to the repository's short commit
	// hash: any commit forces a reload of every versioned asset.
	ModeGit Mode = "git"
	// ModeNone leaves the original file name untouched.
	ModeNone Mode = "none"
)

// Rename applies mode's versioning scheme to writePath, returning the
// final path the file now lives at. For ModeNone it returns writePath
// unchanged. fileHash is the asset's own content hash (used for
// ModeMD5); gitHash is the repository short hash (used for ModeGit).
// The file name must contain ".min." - versioning only applies to
// already-minified assets.
func Rename(writePath string, mode Mode, fileHash, gitHash string) (string, error) {
	if mode == ModeNone || mode == "" {
		return writePath, nil
	}

	fileName := filepath.Base(writePath)
	if !strings.Contains(fileName, ".min.") {
		return "", cerrors.New(cerrors.InvalidFilename, writePath,
			`invalid filename: must contain ".min." before its extension, got %q`, fileName)
	}

	var newValue string
	switch mode {
	case ModeMD5:
		newValue = fileHash
	case ModeGit:
		newValue = gitHash
	default:
		return "", fmt.Errorf("unknown versioning mode %q", mode)
	}
	newValue = strings.ReplaceAll(newValue, "/", "-")

	ext := fileName[strings.Index(fileName, ".min.")+len(".min."):]
	newName := fmt.Sprintf("%s.min.%s", newValue, ext)
	return filepath.Join(filepath.Dir(writePath), newName), nil
}

// DictSibling returns the sibling `.min.dict` path for a versioned
// `.min.js` asset, where the Rewriter's dictionary dump is written.
func DictSibling(writePath string) string {
	return strings.Replace(writePath, "min.js", "min.dict", 1)
}
