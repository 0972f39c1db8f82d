package create_ctx

import (
	"github.com/appraise-dev/create-appraise/cli/config"
	"github.com/appraise-dev/create-appraise/cli/pkgmanager"
)

// Preset contains answers provided on the command line. Preset answers are not prompted for.
type Preset struct {
	// TargetDir is a project directory, relative to the working directory or absolute.
	TargetDir string
	// PackageManager is a package manager name.
	PackageManager string
	// Install is set if install decision is given.
	Install *bool
	// AcceptDefaults if set, disables user interaction. Defaults are used for
	// anything not preset.
	AcceptDefaults bool
}

// PromptAnswers contains the operator's answers.
type PromptAnswers struct {
	// TargetDir is an absolute path of the project directory to create.
	TargetDir string
	// PackageManager is a package manager used to install dependencies.
	PackageManager pkgmanager.PackageManager
	// RunInstall is true if dependencies are installed right after scaffolding.
	RunInstall bool
}

// CreateCtx contains information for creating a project from the template.
type CreateCtx struct {
	// WorkDir is create-appraise launch working directory.
	WorkDir string
	// Config is resolved environment configuration.
	Config config.Config
	// Preset contains answers given on the command line.
	Preset Preset
	// DryRun if set, prints files to be copied without writing anything.
	DryRun bool
}
