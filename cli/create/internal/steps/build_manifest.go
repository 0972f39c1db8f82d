package steps

import (
	"context"

	"github.com/apex/log"
	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/create/internal/app_template"
	"github.com/appraise-dev/create-appraise/cli/create/internal/manifest"
)

// BuildManifest represents the template file listing step.
type BuildManifest struct{}

// Run lists template files skipping dependency caches, secrets and lockfiles.
func (BuildManifest) Run(_ context.Context, _ *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	fileManifest, err := manifest.Build(templateCtx.TemplateRoot, templateCtx.Rules)
	if err != nil {
		return err
	}
	log.Debugf("%d template files to copy", len(fileManifest))
	templateCtx.Manifest = fileManifest
	return nil
}
