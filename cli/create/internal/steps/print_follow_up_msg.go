package steps

import (
	"context"
	"fmt"
	"io"
	"strings"

	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/create/internal/app_template"
	"github.com/appraise-dev/create-appraise/cli/pkgmanager"
	"github.com/appraise-dev/create-appraise/cli/util"
	"github.com/fatih/color"
)

// PrintFollowUpMessage represents the success summary step.
type PrintFollowUpMessage struct {
	// Writer is used to write follow-up message.
	Writer io.Writer
}

// quoteArg quotes a shell argument containing spaces.
func quoteArg(arg string) string {
	if strings.ContainsAny(arg, " \t'\"") {
		return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
	}
	return arg
}

// Run prints where the project is created and how to start it.
func (step PrintFollowUpMessage) Run(_ context.Context, createCtx *create_ctx.CreateCtx,
	templateCtx *app_template.TemplateCtx) error {
	if !templateCtx.Copied {
		return nil
	}

	answers := templateCtx.Answers
	dir := util.RelativeToDir(createCtx.WorkDir, answers.TargetDir)
	green := color.New(color.FgGreen).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(step.Writer, "\n%s Created Appraise project in %s\n\n",
		green("✔"), bold(answers.TargetDir))
	fmt.Fprintln(step.Writer, "Next steps:")
	if dir != "." {
		fmt.Fprintf(step.Writer, "  cd %s\n", quoteArg(dir))
	}
	if !answers.RunInstall || templateCtx.InstallErr != nil {
		fmt.Fprintf(step.Writer, "  %s\n", pkgmanager.ResolveInstallCommand(answers.PackageManager))
	}
	fmt.Fprintf(step.Writer, "  %s\n", pkgmanager.RunScript(answers.PackageManager, "dev"))

	return nil
}
