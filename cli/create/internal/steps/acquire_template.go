package steps

import (
	"context"

	"github.com/apex/log"
	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/create/internal/app_template"
	"github.com/appraise-dev/create-appraise/cli/create/internal/source"
)

// AcquireTemplate represents the template source tree retrieval step.
type AcquireTemplate struct {
	// Strategies are network strategies tried in order.
	Strategies []source.Strategy
}

// Run obtains the template source tree and locates the template root in it.
func (step AcquireTemplate) Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	src, err := source.Acquire(ctx, createCtx.Config, step.Strategies)
	if err != nil {
		return err
	}
	templateCtx.Source = src
	log.Debugf("Template source (%s) is in %s", src.Origin, src.Root)

	templateCtx.TemplateRoot, err = source.TemplateRoot(src, createCtx.Config.TemplatePath)
	return err
}
