package steps

import (
	"context"
	"fmt"
	"io"

	"github.com/apex/log"
	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/create/internal/app_template"
	"github.com/appraise-dev/create-appraise/cli/create/internal/manifest"
)

// CopyTemplateFiles represents the template files copy step.
type CopyTemplateFiles struct {
	// Writer is used to print the manifest in dry run mode.
	Writer io.Writer
}

// Run copies manifest files to the target directory. In dry run mode manifest
// files are printed instead.
func (step CopyTemplateFiles) Run(_ context.Context, createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	if createCtx.DryRun {
		for _, relPath := range templateCtx.Manifest {
			fmt.Fprintln(step.Writer, relPath)
		}
		return nil
	}

	log.Infof("Creating project in %q", templateCtx.Answers.TargetDir)
	if err := manifest.Copy(templateCtx.TemplateRoot, templateCtx.Answers.TargetDir,
		templateCtx.Manifest); err != nil {
		return err
	}
	templateCtx.Copied = true
	return nil
}
