package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"sort"
)

// FileSetFingerprint derives a stable version key from a set of input files:
// name, size and modification time of each. Any change to the selected file
// set changes the fingerprint, which is what invalidates the in-process
// dataset caches. Missing files contribute their name only, so adding or
// removing a file is also a change.
func FileSetFingerprint(paths []string) string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	h := sha256.New()
	for _, p := range sorted {
		info, err := os.Stat(p)
		if err != nil {
			fmt.Fprintf(h, "%s|missing;", p)
			continue
		}
		fmt.Fprintf(h, "%s|%d|%d;", p, info.Size(), info.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil))
}
