package steps

import (
	"context"

	"github.com/apex/log"
	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/create/internal/app_template"
	"github.com/appraise-dev/create-appraise/cli/pkgmanager"
)

// InstallDependencies represents the dependencies installation step.
type InstallDependencies struct {
	// Runner runs the package manager.
	Runner pkgmanager.Runner
}

// Run installs project dependencies if the operator asked for it. A failure is
// recorded in the template context and does not stop the chain.
func (step InstallDependencies) Run(_ context.Context, _ *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	if !templateCtx.Copied {
		return nil
	}
	if !templateCtx.Answers.RunInstall {
		log.Debug("Dependencies installation is skipped.")
		return nil
	}

	templateCtx.InstallErr = pkgmanager.Install(step.Runner, templateCtx.Answers.TargetDir,
		templateCtx.Answers.PackageManager)
	return nil
}
