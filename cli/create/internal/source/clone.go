package source

import (
	"context"

	"github.com/apex/log"
	"github.com/appraise-dev/create-appraise/cli/config"
	"github.com/appraise-dev/create-appraise/cli/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Clone makes a shallow single-branch clone of the repository.
func Clone(ctx context.Context, cfg config.Config) (*Source, error) {
	log.Infof("Cloning %s (branch %s)", cfg.RepoURL, cfg.Branch)

	src, err := newTempSource(OriginClone)
	if err != nil {
		return nil, err
	}

	err = util.RunWithSpinner("Cloning template", func() error {
		_, err := git.PlainCloneContext(ctx, src.Root, false, &git.CloneOptions{
			URL:           cfg.RepoURL,
			ReferenceName: plumbing.NewBranchReferenceName(cfg.Branch),
			SingleBranch:  true,
			Depth:         1,
			Tags:          git.NoTags,
		})
		return err
	})
	if err != nil {
		src.Close()
		return nil, err
	}

	return src, nil
}
