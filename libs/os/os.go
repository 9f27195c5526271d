package os

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the path that ReadFileOrStdin reads from stdin.
const StdinPath = "-"

// EnsureDir creates dir and any missing parents with the given mode. It
// fails when dir, or one of its parents, exists but is not a directory.
func EnsureDir(dir string, mode os.FileMode) error {
	if err := os.MkdirAll(dir, mode); err != nil {
		return fmt.Errorf("could not create directory %v: %w", dir, err)
	}
	return nil
}

func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// ReadFileOrStdin reads the whole file at filePath, or all of stdin when
// filePath is StdinPath.
func ReadFileOrStdin(filePath string, stdin io.Reader) ([]byte, error) {
	if filePath == StdinPath {
		bz, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return bz, nil
	}
	bz, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return bz, nil
}
