package fileutil

import (
	"errors"
	"fmt"
	"os"
)

// RemoveIfExists deletes path and reports whether there was a file to delete.
func RemoveIfExists(path string) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if err := os.Remove(path); err != nil {
		return false, fmt.Errorf("error removing %s: %w", path, err)
	}
	return true, nil
}
