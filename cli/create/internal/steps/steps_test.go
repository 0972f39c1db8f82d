package steps

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testWorkDirName = "work-dir"

// mockRunner records commands instead of running them.
type mockRunner struct {
	commands [][]string
	err      error
}

func (runner *mockRunner) Run(cmd *exec.Cmd, workDir string) error {
	runner.commands = append(runner.commands, cmd.Args)
	return runner.err
}

var errRunFailed = errors.New("executable file not found in $PATH")

// createTemplateDir creates a template directory with the given files.
func createTemplateDir(t *testing.T, files ...string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), testWorkDirName)
	for _, file := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(file))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(file), 0644))
	}
	return root
}
