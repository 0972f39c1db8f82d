// Package version reports the create-appraise build version.
package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "create-appraise"
)

// Set at link time by the magefile build targets.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// normalizeTag converts a git tag like "v1.2.0-3-gabc1234" to its numeric
// segments ("1.2.0"). Tags that are not versions are returned as is.
func normalizeTag(tag string) string {
	parsed, err := goVersion.NewVersion(tag)
	if err != nil {
		return tag
	}
	segments := parsed.Segments()
	numbers := make([]string, 0, len(segments))
	for _, segment := range segments {
		numbers = append(numbers, strconv.Itoa(segment))
	}
	return strings.Join(numbers, ".")
}

// releaseVersion returns the normalized tag with an optional label.
func releaseVersion() string {
	if gitTag == "" {
		return unknownVersion
	}
	release := normalizeTag(gitTag)
	if versionLabel != "" {
		release += "/" + versionLabel
	}
	return release
}

// GetVersion returns create-appraise version info. showShort returns only the
// version, needCommit appends the commit hash to it.
func GetVersion(showShort bool, needCommit bool) string {
	release := releaseVersion()
	switch {
	case needCommit:
		return release + "." + gitCommit
	case showShort:
		return release
	}
	return fmt.Sprintf("%s version %s, %s/%s. commit: %s",
		cliVersionTitle, release, runtime.GOOS, runtime.GOARCH, gitCommit)
}
