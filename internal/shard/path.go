// Package shard implements the per-key shard files and the directory-wide
// collection that orchestrates them, per spec.md sections 4.3 and 4.4.
package shard

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pwdx/pwdx/internal/pwdxcfg"
)

var fileNamePattern = regexp.MustCompile(
	"^" + regexp.QuoteMeta(pwdxcfg.IndexFilePrefix) + `(\S+)\.` + regexp.QuoteMeta(pwdxcfg.IndexFileExtension) + "$",
)

// PathForKey returns the path a shard for key would live at under dir. It
// does not touch the filesystem beyond checking that dir exists.
func PathForKey(key, dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("shard: directory %s does not exist: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("shard: %s is not a directory", dir)
	}

	name := pwdxcfg.IndexFilePrefix + key + "." + pwdxcfg.IndexFileExtension
	return filepath.Join(dir, name), nil
}

// KeyForPath extracts the key from a shard file path, or reports ok=false if
// the file name does not match the subset_<key>.csv grammar. It does not
// check that the file exists.
func KeyForPath(path string) (key string, ok bool) {
	name := filepath.Base(path)
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}
