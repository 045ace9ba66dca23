package generator

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteFileAtomic writes data to path through a temporary file in the same
// directory, then renames it into place. On failure the temporary file is
// removed and any existing file at path is left untouched.
//
// A symlink at path is followed and its target is replaced, so the link
// survives. An existing file keeps its permission bits; perm only applies
// to new files.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	if target, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = target
	}
	fi, statErr := os.Stat(path)
	existing := statErr == nil
	if existing {
		perm = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmpPath)
		}
	}()

	// OpenFile is subject to the umask; restore the exact bits of the file being replaced.
	if existing {
		if err = f.Chmod(perm); err != nil {
			f.Close()
			return err
		}
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
