package create

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/appraise-dev/create-appraise/cli/config"
	"github.com/appraise-dev/create-appraise/cli/configure"
	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/create/internal/source"
	"github.com/appraise-dev/create-appraise/cli/pkgmanager"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPrompter returns scripted answers.
type mockPrompter struct {
	dir     string
	pmIndex int
	install bool
	asked   int
}

func (prompter *mockPrompter) Input(string, string) (string, error) {
	prompter.asked++
	return prompter.dir, nil
}

func (prompter *mockPrompter) Select(string, []string, int) (int, error) {
	prompter.asked++
	return prompter.pmIndex, nil
}

func (prompter *mockPrompter) Confirm(string, bool) (bool, error) {
	prompter.asked++
	return prompter.install, nil
}

// mockRunner records commands instead of running them.
type mockRunner struct {
	commands [][]string
	err      error
}

func (runner *mockRunner) Run(cmd *exec.Cmd, workDir string) error {
	runner.commands = append(runner.commands, cmd.Args)
	return runner.err
}

// fixtureStrategy returns a strategy serving a repository-like tree and counting calls.
func fixtureStrategy(t *testing.T, calls *int) source.Strategy {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"README.md":                                       "repository readme",
		"templates/default/package.json":                  `{"name":"appraise-app"}`,
		"templates/default/src/app/page.tsx":              "page",
		"templates/default/.env":                          "DATABASE_URL=secret",
		"templates/default/pnpm-lock.yaml":                "lock",
		"templates/default/node_modules/next/package.json": "{}",
	}
	for name, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	}

	return source.Strategy{
		Name: "fixture",
		Fetch: func(context.Context, config.Config) (*source.Source, error) {
			*calls++
			return &source.Source{Root: root, Origin: source.OriginArchive}, nil
		},
	}
}

func newCreateCtx(t *testing.T) create_ctx.CreateCtx {
	return create_ctx.CreateCtx{
		WorkDir: t.TempDir(),
		Config:  configure.GetDefaultConfig(),
	}
}

func TestRunFreshDirNoInstall(t *testing.T) {
	color.NoColor = true
	createCtx := newCreateCtx(t)
	fetchCalls := 0
	prompter := mockPrompter{dir: "my-app", pmIndex: 1, install: false}
	runner := mockRunner{}
	var output bytes.Buffer

	err := runChain(context.Background(), &createCtx, newStepsChain(&prompter, &runner,
		[]source.Strategy{fixtureStrategy(t, &fetchCalls)}, &output))
	require.NoError(t, err)

	targetDir := filepath.Join(createCtx.WorkDir, "my-app")
	assert.Equal(t, 1, fetchCalls)
	assert.Empty(t, runner.commands)
	assert.FileExists(t, filepath.Join(targetDir, "package.json"))
	assert.FileExists(t, filepath.Join(targetDir, "src", "app", "page.tsx"))
	assert.NoFileExists(t, filepath.Join(targetDir, "README.md"))
	assert.NoFileExists(t, filepath.Join(targetDir, ".env"))
	assert.NoFileExists(t, filepath.Join(targetDir, "pnpm-lock.yaml"))
	assert.NoDirExists(t, filepath.Join(targetDir, "node_modules"))

	assert.Contains(t, output.String(), "  cd my-app\n  pnpm install\n  pnpm dev\n")
}

func TestRunNonEmptyDirRejectedBeforeFetch(t *testing.T) {
	createCtx := newCreateCtx(t)
	targetDir := filepath.Join(createCtx.WorkDir, "existing")
	require.NoError(t, os.Mkdir(targetDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(targetDir, "notes.txt"), []byte("keep"), 0644))

	fetchCalls := 0
	prompter := mockPrompter{dir: "existing", install: true}
	runner := mockRunner{}

	err := runChain(context.Background(), &createCtx, newStepsChain(&prompter, &runner,
		[]source.Strategy{fixtureStrategy(t, &fetchCalls)}, &bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
	assert.Equal(t, 0, fetchCalls)
	assert.Equal(t, 1, prompter.asked)
	assert.Empty(t, runner.commands)

	entries, err := os.ReadDir(targetDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunInstall(t *testing.T) {
	color.NoColor = true
	createCtx := newCreateCtx(t)
	fetchCalls := 0
	prompter := mockPrompter{dir: "app", pmIndex: 0, install: true}
	runner := mockRunner{}

	err := runChain(context.Background(), &createCtx, newStepsChain(&prompter, &runner,
		[]source.Strategy{fixtureStrategy(t, &fetchCalls)}, &bytes.Buffer{}))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"npm", "install", "--legacy-peer-deps"}}, runner.commands)
}

func TestRunInstallFailureKeepsProject(t *testing.T) {
	color.NoColor = true
	createCtx := newCreateCtx(t)
	fetchCalls := 0
	prompter := mockPrompter{dir: "app", pmIndex: 3, install: true}
	runner := mockRunner{err: errors.New("executable file not found in $PATH")}
	var output bytes.Buffer

	err := runChain(context.Background(), &createCtx, newStepsChain(&prompter, &runner,
		[]source.Strategy{fixtureStrategy(t, &fetchCalls)}, &output))
	var installErr *pkgmanager.InstallError
	require.ErrorAs(t, err, &installErr)
	assert.Equal(t, "bun install", installErr.Command)

	assert.FileExists(t, filepath.Join(createCtx.WorkDir, "app", "package.json"))
	assert.Contains(t, output.String(), "  bun install\n")
}

func TestRunAcquireFailure(t *testing.T) {
	createCtx := newCreateCtx(t)
	prompter := mockPrompter{dir: "app"}
	failing := func(name string) source.Strategy {
		return source.Strategy{Name: name,
			Fetch: func(context.Context, config.Config) (*source.Source, error) {
				return nil, errors.New(name + " is unreachable")
			}}
	}

	err := runChain(context.Background(), &createCtx, newStepsChain(&prompter, &mockRunner{},
		[]source.Strategy{failing("archive download"), failing("git clone")}, &bytes.Buffer{}))
	var acquireErr *source.AcquireError
	require.ErrorAs(t, err, &acquireErr)
	assert.Contains(t, err.Error(), "archive download: archive download is unreachable")
	assert.Contains(t, err.Error(), "git clone: git clone is unreachable")
	assert.Contains(t, err.Error(), configure.UseBundledEnvName)
	assert.NoDirExists(t, filepath.Join(createCtx.WorkDir, "app"))
}

func TestRunBundledDryRun(t *testing.T) {
	createCtx := newCreateCtx(t)
	createCtx.Config.UseBundled = true
	createCtx.DryRun = true
	createCtx.Preset = create_ctx.Preset{TargetDir: "app", AcceptDefaults: true}
	prompter := mockPrompter{}
	runner := mockRunner{}
	var output bytes.Buffer

	err := runChain(context.Background(), &createCtx, newStepsChain(&prompter, &runner,
		nil, &output))
	require.NoError(t, err)
	assert.Contains(t, output.String(), "package.json\n")
	assert.Contains(t, output.String(), "prisma/schema.prisma\n")
	assert.Equal(t, 0, prompter.asked)
	assert.Empty(t, runner.commands)
	assert.NoDirExists(t, filepath.Join(createCtx.WorkDir, "app"))
}

func TestRunBundled(t *testing.T) {
	color.NoColor = true
	createCtx := newCreateCtx(t)
	createCtx.Config.UseBundled = true
	install := false
	createCtx.Preset = create_ctx.Preset{TargetDir: "app", PackageManager: "yarn",
		Install: &install}
	var output bytes.Buffer

	err := runChain(context.Background(), &createCtx, newStepsChain(&mockPrompter{},
		&mockRunner{}, nil, &output))
	require.NoError(t, err)

	targetDir := filepath.Join(createCtx.WorkDir, "app")
	for _, file := range []string{"package.json", "README.md", ".gitignore", ".env.example",
		"prisma/schema.prisma", "src/app/page.tsx"} {
		assert.FileExists(t, filepath.Join(targetDir, filepath.FromSlash(file)))
	}
	assert.Contains(t, output.String(), "  yarn install\n  yarn dev\n")
}

func TestRunInvalidCtx(t *testing.T) {
	createCtx := create_ctx.CreateCtx{WorkDir: "relative"}
	err := runChain(context.Background(), &createCtx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `working directory "relative" is not absolute`)
}
