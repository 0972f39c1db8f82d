// Package source obtains the template source tree: from the bundled copy,
// a repository archive or a repository clone.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/appraise-dev/create-appraise/cli/config"
	"github.com/appraise-dev/create-appraise/cli/configure"
	"github.com/appraise-dev/create-appraise/cli/util"
)

// Origin names where a source tree came from.
type Origin string

const (
	OriginBundled Origin = "bundled"
	OriginArchive Origin = "archive"
	OriginClone   Origin = "clone"
)

// Source is an obtained template source tree.
type Source struct {
	// Root is a source tree root directory.
	Root string
	// Origin is a strategy produced the source tree.
	Origin Origin
	// tempDir is removed on Close.
	tempDir string
}

// Close removes temporary files of the source tree.
func (src *Source) Close() error {
	if src == nil || src.tempDir == "" {
		return nil
	}
	log.Debugf("Removing %s", src.tempDir)
	err := os.RemoveAll(src.tempDir)
	src.tempDir = ""
	return err
}

// newTempSource creates a source backed by a new temporary directory.
func newTempSource(origin Origin) (*Source, error) {
	tempDir, err := os.MkdirTemp("", "create-appraise-"+string(origin)+"-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	return &Source{Root: tempDir, Origin: origin, tempDir: tempDir}, nil
}

// FetchFunc tries to obtain the source tree.
type FetchFunc func(ctx context.Context, cfg config.Config) (*Source, error)

// Strategy is a named way to obtain the source tree.
type Strategy struct {
	Name  string
	Fetch FetchFunc
}

// DefaultStrategies returns network strategies in the order they are tried.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{Name: "archive download", Fetch: FetchArchive},
		{Name: "git clone", Fetch: Clone},
	}
}

// StrategyFailure is a failed strategy attempt.
type StrategyFailure struct {
	Strategy string
	Err      error
}

// AcquireError is returned if every strategy failed.
type AcquireError struct {
	// RepoURL is a repository the template was fetched from.
	RepoURL string
	// Branch is a fetched branch.
	Branch string
	// Failures lists failed attempts in order.
	Failures []StrategyFailure
}

// Error returns error message.
func (e *AcquireError) Error() string {
	reasons := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		reasons = append(reasons, fmt.Sprintf("%s: %s", failure.Strategy, failure.Err))
	}
	return fmt.Sprintf("failed to fetch the template from %s (branch %s): %s. "+
		"Set %s=1 to use the template bundled with create-appraise",
		e.RepoURL, e.Branch, strings.Join(reasons, "; "), configure.UseBundledEnvName)
}

// Acquire obtains the source tree. The bundled template is used if cfg.UseBundled
// is set, otherwise strategies are tried in order until one succeeds.
func Acquire(ctx context.Context, cfg config.Config, strategies []Strategy) (*Source, error) {
	if cfg.UseBundled {
		log.Info("Using the bundled template")
		return Bundled()
	}

	acquireErr := &AcquireError{RepoURL: cfg.RepoURL, Branch: cfg.Branch}
	for _, strategy := range strategies {
		log.Debugf("Trying %s", strategy.Name)
		src, err := strategy.Fetch(ctx, cfg)
		if err == nil {
			return src, nil
		}
		log.Warnf("Template %s failed: %s", strategy.Name, err)
		acquireErr.Failures = append(acquireErr.Failures,
			StrategyFailure{Strategy: strategy.Name, Err: err})
	}

	return nil, acquireErr
}

// TemplateRoot returns the template directory inside the source tree.
func TemplateRoot(src *Source, templatePath string) (string, error) {
	relPath := filepath.Clean(filepath.FromSlash(templatePath))
	if !filepath.IsLocal(relPath) {
		return "", fmt.Errorf("template path %q must be relative to the repository root",
			templatePath)
	}

	root := filepath.Join(src.Root, relPath)
	if !util.IsDir(root) {
		return "", fmt.Errorf("template path %q is not found in the %s template source",
			templatePath, src.Origin)
	}
	return root, nil
}
