package cmd

import (
	"context"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/appraise-dev/create-appraise/cli/create"
	create_ctx "github.com/appraise-dev/create-appraise/cli/create/context"
	"github.com/appraise-dev/create-appraise/cli/util"
	"github.com/appraise-dev/create-appraise/cli/version"
	"github.com/spf13/cobra"
)

// createOpts holds root command flags.
type createOpts struct {
	dir            string
	packageManager string
	install        bool
	noInstall      bool
	acceptDefaults bool
	dryRun         bool
	verbose        bool
}

var (
	opts    createOpts
	rootCmd *cobra.Command

	// errInstallConflict is returned if both --install and --no-install are set.
	errInstallConflict = util.NewArgError("--install and --no-install are mutually exclusive")
)

// NewCmdRoot creates a new root command.
func NewCmdRoot() *cobra.Command {
	opts = createOpts{}
	rootCmd := &cobra.Command{
		Use:   "create-appraise [flags]",
		Short: "Create a new Appraise project",
		Long: `Create a new Appraise project from the Appraise template.

The template is downloaded from the Appraise repository. Set
CREATE_APPRAISE_USE_BUNDLED=1 to use the template bundled with create-appraise.

Environment:
	CREATE_APPRAISE_REPO_URL       repository to fetch the template from
	CREATE_APPRAISE_BRANCH         repository branch
	CREATE_APPRAISE_TEMPLATE_PATH  template directory inside the repository
	CREATE_APPRAISE_USE_BUNDLED    1, true or yes to skip the download`,
		Example: `
# Create a project answering the questions.

    $ create-appraise

# Create a project in my-app using pnpm without installing dependencies.

    $ create-appraise -d my-app --pm pnpm --no-install

# Create a project in CI with default answers.

    $ create-appraise --yes`,
		Version:       version.GetVersion(false, false),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			err := internalCreateModule(cmd.Context())
			util.HandleCmdErr(cmd, err)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.dir, "dir", "d", "", "Project directory")
	flags.StringVar(&opts.packageManager, "pm", "",
		"Package manager: npm, pnpm, yarn or bun")
	flags.BoolVar(&opts.install, "install", false, "Install dependencies without asking")
	flags.BoolVar(&opts.noInstall, "no-install", false, "Do not install dependencies")
	flags.BoolVarP(&opts.acceptDefaults, "yes", "y", false,
		"Use default answers for questions not answered by flags")
	flags.BoolVar(&opts.dryRun, "dry-run", false,
		"Print files that would be created and exit")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "V", false,
		"Print debug messages")

	rootCmd.AddCommand(
		NewVersionCmd(),
		NewCompletionCmd(),
	)
	rootCmd.InitDefaultHelpCmd()

	log.SetHandler(cli.Default)

	return rootCmd
}

// newPreset returns answers given by flags.
func newPreset(opts createOpts) (create_ctx.Preset, error) {
	if opts.install && opts.noInstall {
		return create_ctx.Preset{}, errInstallConflict
	}

	preset := create_ctx.Preset{
		TargetDir:      opts.dir,
		PackageManager: opts.packageManager,
		AcceptDefaults: opts.acceptDefaults,
	}
	if opts.install || opts.noInstall {
		install := opts.install
		preset.Install = &install
	}
	return preset, nil
}

// internalCreateModule is a default create module.
func internalCreateModule(ctx context.Context) error {
	preset, err := newPreset(opts)
	if err != nil {
		return err
	}

	createCtx := create_ctx.CreateCtx{
		Preset: preset,
		DryRun: opts.dryRun,
	}
	if err := create.FillCtx(&createCtx); err != nil {
		return err
	}

	return create.Run(ctx, &createCtx)
}

// Execute root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		util.HandleCmdErr(rootCmd, util.NewArgError(err.Error()))
	}
}

// InitRoot initializes the root command.
func InitRoot() {
	rootCmd = NewCmdRoot()
}
