package integrity

import (
	"os"

	"github.com/klauspost/compress/gzip"
)

// Precompress writes a max-compression gzip sibling of path (path+".gz"),
// the common static-asset-pipeline companion to content hashing: servers
// that support precompressed assets skip gzipping on every request.
func Precompress(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	gzPath := path + ".gz"
	f, err := os.Create(gzPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w, err := gzip.NewWriterLevel(f, gzip.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return gzPath, nil
}
