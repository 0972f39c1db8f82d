package steps

import (
	"context"

	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/create/internal/app_template"
	"github.com/appraise-dev/create-appraise/cli/create/internal/collector"
	"github.com/appraise-dev/create-appraise/cli/prompt"
)

// CollectAnswers represents the operator questions step.
type CollectAnswers struct {
	// Prompter is used to ask the operator.
	Prompter prompt.Prompter
}

// Run collects and validates project parameters.
func (step CollectAnswers) Run(_ context.Context, createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	answers, err := collector.Collect(step.Prompter, createCtx.WorkDir, createCtx.Preset)
	if err != nil {
		return err
	}
	templateCtx.Answers = answers
	return nil
}
