// Package steps provides a set of handlers for create command chain of responsibility.
package steps

import (
	"context"

	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/create/internal/app_template"
)

// Step is an interface for single step in create chain.
type Step interface {
	Run(ctx context.Context, createCtx *create_ctx.CreateCtx,
		templateCtx *app_template.TemplateCtx) error
}
