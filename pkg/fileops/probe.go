// pkg/fileops/probe.go

package fileops

import (
	"os"
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// Exists reports whether path exists at all.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileSize returns the size of a regular file in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, cerr.Newf("%s is a directory", path)
	}
	return info.Size(), nil
}

// TailLines returns the last n lines of the file at path.
// The bot log is rotated by the host, so reading it whole is acceptable.
func TailLines(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}
