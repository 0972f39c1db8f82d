package source

import (
	"fmt"
	"path/filepath"

	"github.com/appraise-dev/create-appraise/cli/create/builtin_templates"
	"github.com/otiai10/copy"
)

// Bundled materializes the template embedded into create-appraise.
// The tree keeps the repository layout, so the same template path applies.
func Bundled() (*Source, error) {
	src, err := newTempSource(OriginBundled)
	if err != nil {
		return nil, err
	}

	err = copy.Copy(builtin_templates.Root, filepath.Join(src.Root, builtin_templates.Root),
		copy.Options{
			FS:                builtin_templates.TemplatesFs,
			PermissionControl: copy.AddPermission(0o200),
		})
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("failed to unpack the bundled template: %w", err)
	}

	return src, nil
}
