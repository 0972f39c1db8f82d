package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/apex/log"
	"github.com/appraise-dev/create-appraise/cli/config"
	"github.com/appraise-dev/create-appraise/cli/util"
	"github.com/codeclysm/extract/v3"
)

// httpClient is used for archive downloads. No timeout is set.
var httpClient = &http.Client{}

// ArchiveURL returns a gzip tarball URL of the branch snapshot.
func ArchiveURL(repoURL, branch string) string {
	base := strings.TrimSuffix(strings.TrimSuffix(repoURL, "/"), ".git")
	return fmt.Sprintf("%s/archive/refs/heads/%s.tar.gz", base, branch)
}

// stripTopDir removes the leading "<repo>-<branch>/" directory of archive entries.
// Entries outside of it are skipped.
func stripTopDir(name string) string {
	name = strings.TrimPrefix(name, "./")
	_, rest, found := strings.Cut(name, "/")
	if !found {
		return ""
	}
	return rest
}

// FetchArchive downloads and extracts the branch snapshot.
func FetchArchive(ctx context.Context, cfg config.Config) (*Source, error) {
	archiveURL := ArchiveURL(cfg.RepoURL, cfg.Branch)
	log.Infof("Downloading %s", archiveURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	src, err := newTempSource(OriginArchive)
	if err != nil {
		return nil, err
	}

	err = util.RunWithSpinner("Downloading template", func() error {
		res, err := httpClient.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("HTTP request error: %d %s", res.StatusCode,
				http.StatusText(res.StatusCode))
		}

		if err := extract.Gz(ctx, res.Body, src.Root, stripTopDir); err != nil {
			return fmt.Errorf("archive extraction failed: %w", err)
		}
		return nil
	})
	if err != nil {
		src.Close()
		return nil, err
	}

	return src, nil
}
