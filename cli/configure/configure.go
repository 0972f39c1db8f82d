package configure

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/apex/log"
	"github.com/appraise-dev/create-appraise/cli/config"
	"github.com/appraise-dev/create-appraise/cli/util"
	"github.com/mitchellh/mapstructure"
)

const (
	// DefaultRepoURL is a repository the template is fetched from by default.
	DefaultRepoURL = "https://github.com/appraise-dev/appraise"
	// DefaultBranch is a branch fetched by default.
	DefaultBranch = "main"
	// DefaultTemplatePath is a template root inside the repository.
	DefaultTemplatePath = "templates/default"

	RepoURLEnvName      = "CREATE_APPRAISE_REPO_URL"
	BranchEnvName       = "CREATE_APPRAISE_BRANCH"
	TemplatePathEnvName = "CREATE_APPRAISE_TEMPLATE_PATH"
	UseBundledEnvName   = "CREATE_APPRAISE_USE_BUNDLED"
)

// envFields maps environment variables to config fields.
var envFields = map[string]string{
	RepoURLEnvName:      "repo_url",
	BranchEnvName:       "branch",
	TemplatePathEnvName: "template_path",
	UseBundledEnvName:   "use_bundled",
}

// LookupEnvFunc is a function used to get environment variable value.
type LookupEnvFunc func(key string) (string, bool)

// GetDefaultConfig returns configuration used when no environment overrides are set.
func GetDefaultConfig() config.Config {
	return config.Config{
		RepoURL:      DefaultRepoURL,
		Branch:       DefaultBranch,
		TemplatePath: DefaultTemplatePath,
		UseBundled:   false,
	}
}

// decodeTruthyString converts environment strings to booleans: "1", "true" and "yes"
// in any case are true, everything else is false.
func decodeTruthyString(from, to reflect.Type, value interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
		return value, nil
	}
	return util.IsTruthy(value.(string)), nil
}

func decodeConfig(input map[string]any, cfg *config.Config) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:      cfg,
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(decodeTruthyString),
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetConfig resolves configuration from the environment on top of defaults.
// Empty values are treated as unset.
func GetConfig(lookupEnv LookupEnvFunc) (config.Config, error) {
	cfg := GetDefaultConfig()

	rawOpts := make(map[string]any)
	for envName, field := range envFields {
		value, found := lookupEnv(envName)
		if !found || strings.TrimSpace(value) == "" {
			continue
		}
		log.Debugf("Using %s=%q", envName, value)
		rawOpts[field] = strings.TrimSpace(value)
	}

	if err := decodeConfig(rawOpts, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment configuration: %w", err)
	}
	cfg.RepoURL = strings.TrimSuffix(cfg.RepoURL, "/")

	return cfg, nil
}

// GetConfigFromEnv resolves configuration from the process environment.
func GetConfigFromEnv() (config.Config, error) {
	return GetConfig(os.LookupEnv)
}
