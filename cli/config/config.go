package config

// Config stores create-appraise settings resolved from the environment at start-up.
// It is read-only once resolved.
//
// Environment variables:
//
//	CREATE_APPRAISE_REPO_URL       repository to download/clone the template from
//	CREATE_APPRAISE_BRANCH         branch to fetch
//	CREATE_APPRAISE_TEMPLATE_PATH  template root inside the repository
//	CREATE_APPRAISE_USE_BUNDLED    use the template bundled into the binary
type Config struct {
	// RepoURL is a base URL of the repository containing the template.
	RepoURL string `mapstructure:"repo_url"`
	// Branch is a branch name to download or clone.
	Branch string `mapstructure:"branch"`
	// TemplatePath is a subdirectory of the source tree used as a template root.
	TemplatePath string `mapstructure:"template_path"`
	// UseBundled disables network retrieval. The bundled template is used instead.
	UseBundled bool `mapstructure:"use_bundled"`
}
