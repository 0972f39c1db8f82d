// Package collector gathers project parameters from the operator.
package collector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/pkgmanager"
	"github.com/appraise-dev/create-appraise/cli/prompt"
	"github.com/appraise-dev/create-appraise/cli/util"
)

// DefaultTargetDir is offered as the project directory.
const DefaultTargetDir = "./appraise-app"

// ValidationError is returned if the target directory cannot be used.
type ValidationError struct {
	// Path is the rejected target directory.
	Path string
	// Reason describes why the path is rejected.
	Reason string
}

// Error returns error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Path, e.Reason)
}

// ValidateTargetDir checks that targetDir either does not exist or is an empty directory.
func ValidateTargetDir(targetDir string) error {
	fileInfo, err := os.Stat(targetDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", targetDir, err)
	}

	if !fileInfo.IsDir() {
		return &ValidationError{Path: targetDir,
			Reason: "exists and is not a directory: choose an empty or new directory"}
	}

	empty, err := util.IsDirEmpty(targetDir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", targetDir, err)
	}
	if !empty {
		return &ValidationError{Path: targetDir,
			Reason: "is not empty: choose an empty or new directory"}
	}

	return nil
}

// resolveTargetDir applies the default to a blank answer and makes it absolute.
func resolveTargetDir(answer, workDir string) string {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = DefaultTargetDir
	}
	if filepath.IsAbs(answer) {
		return filepath.Clean(answer)
	}
	return filepath.Join(workDir, answer)
}

func collectTargetDir(prompter prompt.Prompter, workDir string,
	preset create_ctx.Preset) (string, error) {
	answer := preset.TargetDir
	if answer == "" && !preset.AcceptDefaults {
		var err error
		if answer, err = prompter.Input("Project directory", DefaultTargetDir); err != nil {
			return "", err
		}
	}

	targetDir := resolveTargetDir(answer, workDir)
	if err := ValidateTargetDir(targetDir); err != nil {
		return "", err
	}
	return targetDir, nil
}

func collectPackageManager(prompter prompt.Prompter,
	preset create_ctx.Preset) (pkgmanager.PackageManager, error) {
	if preset.PackageManager != "" {
		pm, err := pkgmanager.Parse(preset.PackageManager)
		if err != nil {
			return "", util.NewArgError(err.Error())
		}
		return pm, nil
	}
	if preset.AcceptDefaults {
		return pkgmanager.Default, nil
	}

	items := make([]string, 0, len(pkgmanager.Names))
	defaultIndex := 0
	for i, pm := range pkgmanager.Names {
		items = append(items, string(pm))
		if pm == pkgmanager.Default {
			defaultIndex = i
		}
	}
	index, err := prompter.Select("Package manager", items, defaultIndex)
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(pkgmanager.Names) {
		return "", fmt.Errorf("invalid package manager choice %d", index)
	}
	return pkgmanager.Names[index], nil
}

func collectRunInstall(prompter prompt.Prompter, preset create_ctx.Preset) (bool, error) {
	if preset.Install != nil {
		return *preset.Install, nil
	}
	if preset.AcceptDefaults {
		return true, nil
	}
	return prompter.Confirm("Install dependencies now", true)
}

// Collect asks the operator for the project directory, package manager and
// whether to install dependencies. Preset answers are not asked for.
// The target directory is validated before anything else is asked.
func Collect(prompter prompt.Prompter, workDir string,
	preset create_ctx.Preset) (create_ctx.PromptAnswers, error) {
	var answers create_ctx.PromptAnswers
	var err error

	if answers.TargetDir, err = collectTargetDir(prompter, workDir, preset); err != nil {
		return answers, err
	}
	log.Debugf("Target directory: %s", answers.TargetDir)

	if answers.PackageManager, err = collectPackageManager(prompter, preset); err != nil {
		return answers, err
	}
	if answers.RunInstall, err = collectRunInstall(prompter, preset); err != nil {
		return answers, err
	}

	return answers, nil
}
