package file

import (
	"fmt"
	"os"
	"path/filepath"
)

// remove is swapped in tests to simulate entries that cannot be deleted.
var remove = os.Remove

// Deletes removes path and, when it is a directory, everything below it.
//
// Entries are removed depth-first in directory order, each directory after
// its contents. The first removal that fails stops the walk and is returned;
// entries already removed stay removed and later siblings are left in place.
func Deletes(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := Deletes(filepath.Join(path, entry.Name())); err != nil {
				return err
			}
		}
	}
	if err := remove(path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
