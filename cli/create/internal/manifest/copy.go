package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/otiai10/copy"
)

const defaultDirPermissions = os.FileMode(0755)

// CopyError is returned if a template file cannot be copied. Files copied
// before the failure are left in place.
type CopyError struct {
	// Path is a manifest path of the file failed to copy.
	Path string
	// Err is the underlying error.
	Err error
}

// Error returns error message.
func (e *CopyError) Error() string {
	return fmt.Sprintf("failed to copy %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CopyError) Unwrap() error {
	return e.Err
}

// Copy copies every manifest file from root to the same relative location
// under targetDir. Files are copied one by one, directories are created as needed.
func Copy(root, targetDir string, manifest Manifest) error {
	if err := os.MkdirAll(targetDir, defaultDirPermissions); err != nil {
		return &CopyError{Path: ".", Err: err}
	}

	for _, relPath := range manifest {
		srcPath := filepath.Join(root, filepath.FromSlash(relPath))
		dstPath := filepath.Join(targetDir, filepath.FromSlash(relPath))

		if err := os.MkdirAll(filepath.Dir(dstPath), defaultDirPermissions); err != nil {
			return &CopyError{Path: relPath, Err: err}
		}
		if err := copy.Copy(srcPath, dstPath); err != nil {
			return &CopyError{Path: relPath, Err: err}
		}
		log.Debugf("Copied %s", relPath)
	}

	return nil
}
