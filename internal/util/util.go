package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func DirExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ListFiles returns the regular files directly under dir accepted by match, in lexical order.
func ListFiles(dir string, match func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !match(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// IsRegionGenBank matches antiSMASH per-region GenBank files, e.g. contig_1.region001.gbk.
func IsRegionGenBank(name string) bool {
	return strings.HasSuffix(name, ".gbk") && strings.Contains(name, "region")
}
