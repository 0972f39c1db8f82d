package app_template

import (
	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/create/internal/manifest"
	"github.com/appraise-dev/create-appraise/cli/create/internal/source"
)

// TemplateCtx contains the state passed between project creation steps.
type TemplateCtx struct {
	// Answers are the operator's answers.
	Answers create_ctx.PromptAnswers
	// Source is an acquired template source tree.
	Source *source.Source
	// TemplateRoot is a template directory inside the source tree.
	TemplateRoot string
	// Manifest is a list of template files to copy.
	Manifest manifest.Manifest
	// Rules is a set of exclusion rules used to build the manifest.
	Rules manifest.Rules
	// Copied is true once all manifest files are copied to the target directory.
	Copied bool
	// InstallErr is set if dependencies installation failed.
	InstallErr error
}

// NewTemplateContext creates new template context.
func NewTemplateContext() TemplateCtx {
	return TemplateCtx{Rules: manifest.DefaultRules}
}

// Close releases the acquired source tree.
func (templateCtx *TemplateCtx) Close() error {
	if templateCtx.Source == nil {
		return nil
	}
	return templateCtx.Source.Close()
}
