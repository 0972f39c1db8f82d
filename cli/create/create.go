package create

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/appraise-dev/create-appraise/cli/configure"
	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/create/internal/app_template"
	"github.com/appraise-dev/create-appraise/cli/create/internal/source"
	"github.com/appraise-dev/create-appraise/cli/create/internal/steps"
	"github.com/appraise-dev/create-appraise/cli/pkgmanager"
	"github.com/appraise-dev/create-appraise/cli/prompt"
	"github.com/appraise-dev/create-appraise/cli/util"
	"github.com/appraise-dev/create-appraise/cli/version"
)

// FillCtx fills create context with the working directory and environment configuration.
func FillCtx(createCtx *create_ctx.CreateCtx) error {
	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}
	createCtx.WorkDir = workingDir

	if createCtx.Config, err = configure.GetConfigFromEnv(); err != nil {
		return err
	}

	return nil
}

// newStepsChain returns project creation steps in execution order.
func newStepsChain(prompter prompt.Prompter, runner pkgmanager.Runner,
	strategies []source.Strategy, writer io.Writer) []steps.Step {
	return []steps.Step{
		steps.CollectAnswers{Prompter: prompter},
		steps.AcquireTemplate{Strategies: strategies},
		steps.BuildManifest{},
		steps.CopyTemplateFiles{Writer: writer},
		steps.InstallDependencies{Runner: runner},
		steps.PrintFollowUpMessage{Writer: writer},
	}
}

// runChain runs steps in order, stopping at the first failure. Temporary source
// files are removed in any case. Files already copied to the target directory are kept.
func runChain(ctx context.Context, createCtx *create_ctx.CreateCtx,
	stepsChain []steps.Step) error {
	if err := checkCtx(createCtx); err != nil {
		return util.InternalError("Create context check failed: %s", version.GetVersion, err)
	}

	templateCtx := app_template.NewTemplateContext()
	defer func() {
		if err := templateCtx.Close(); err != nil {
			log.Warnf("Failed to remove temporary directory: %s", err)
		}
	}()

	for _, step := range stepsChain {
		if err := step.Run(ctx, createCtx, &templateCtx); err != nil {
			return err
		}
	}

	return templateCtx.InstallErr
}

// Run creates a new Appraise project interactively.
func Run(ctx context.Context, createCtx *create_ctx.CreateCtx) error {
	stepsChain := newStepsChain(prompt.NewTerminalPrompter(), pkgmanager.TerminalRunner{},
		source.DefaultStrategies(), os.Stdout)
	return runChain(ctx, createCtx, stepsChain)
}

// checkCtx checks create context for validity.
func checkCtx(createCtx *create_ctx.CreateCtx) error {
	if !filepath.IsAbs(createCtx.WorkDir) {
		return fmt.Errorf("working directory %q is not absolute", createCtx.WorkDir)
	}
	if createCtx.Config.TemplatePath == "" {
		return fmt.Errorf("template path is missing")
	}

	return nil
}
