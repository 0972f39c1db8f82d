package source

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/appraise-dev/create-appraise/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createArchive writes a gzipped tarball with the given files.
func createArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	tarWriter := tar.NewWriter(gzipWriter)

	require.NoError(t, tarWriter.WriteHeader(&tar.Header{
		Name:     "appraise-main/",
		Typeflag: tar.TypeDir,
		Mode:     0755,
	}))
	for name, content := range files {
		require.NoError(t, tarWriter.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0644,
			Size:     int64(len(content)),
		}))
		_, err := tarWriter.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, tarWriter.Close())
	require.NoError(t, gzipWriter.Close())
	return buf.Bytes()
}

func newArchiveServer(t *testing.T, archive []byte) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/org/appraise/archive/refs/heads/main.tar.gz" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/gzip")
		w.Write(archive)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestArchiveURL(t *testing.T) {
	assert.Equal(t, "https://github.com/org/appraise/archive/refs/heads/main.tar.gz",
		ArchiveURL("https://github.com/org/appraise", "main"))
	assert.Equal(t, "https://github.com/org/appraise/archive/refs/heads/main.tar.gz",
		ArchiveURL("https://github.com/org/appraise.git", "main"))
	assert.Equal(t, "https://github.com/org/appraise/archive/refs/heads/feature/x.tar.gz",
		ArchiveURL("https://github.com/org/appraise/", "feature/x"))
}

func TestStripTopDir(t *testing.T) {
	assert.Equal(t, "", stripTopDir("appraise-main/"))
	assert.Equal(t, "", stripTopDir("pax_global_header"))
	assert.Equal(t, "templates/default/package.json",
		stripTopDir("appraise-main/templates/default/package.json"))
	assert.Equal(t, "README.md", stripTopDir("./appraise-main/README.md"))
}

func TestFetchArchive(t *testing.T) {
	server := newArchiveServer(t, createArchive(t, map[string]string{
		"appraise-main/README.md":                      "repo readme",
		"appraise-main/templates/default/package.json": `{"name":"appraise-app"}`,
	}))

	src, err := FetchArchive(context.Background(), config.Config{
		RepoURL: server.URL + "/org/appraise.git",
		Branch:  "main",
	})
	require.NoError(t, err)
	assert.Equal(t, OriginArchive, src.Origin)

	content, err := os.ReadFile(filepath.Join(src.Root, "templates", "default", "package.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"name":"appraise-app"}`, string(content))
	assert.FileExists(t, filepath.Join(src.Root, "README.md"))
	assert.NoDirExists(t, filepath.Join(src.Root, "appraise-main"))

	root := src.Root
	require.NoError(t, src.Close())
	assert.NoDirExists(t, root)
	require.NoError(t, src.Close())
}

func TestFetchArchiveNotFound(t *testing.T) {
	server := newArchiveServer(t, nil)

	_, err := FetchArchive(context.Background(), config.Config{
		RepoURL: server.URL + "/org/appraise",
		Branch:  "missing",
	})
	require.EqualError(t, err, "HTTP request error: 404 Not Found")
}

func TestFetchArchiveBrokenArchive(t *testing.T) {
	server := newArchiveServer(t, []byte("not a gzip stream"))

	_, err := FetchArchive(context.Background(), config.Config{
		RepoURL: server.URL + "/org/appraise",
		Branch:  "main",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archive extraction failed")
}

func TestCloneUnreachable(t *testing.T) {
	_, err := Clone(context.Background(), config.Config{
		RepoURL: "http://127.0.0.1:1/org/appraise.git",
		Branch:  "main",
	})
	require.Error(t, err)
}

func TestAcquireFallback(t *testing.T) {
	var tried []string
	expected := &Source{Root: t.TempDir(), Origin: OriginClone}
	strategies := []Strategy{
		{Name: "first", Fetch: func(context.Context, config.Config) (*Source, error) {
			tried = append(tried, "first")
			return nil, errors.New("HTTP request error: 404 Not Found")
		}},
		{Name: "second", Fetch: func(context.Context, config.Config) (*Source, error) {
			tried = append(tried, "second")
			return expected, nil
		}},
		{Name: "third", Fetch: func(context.Context, config.Config) (*Source, error) {
			tried = append(tried, "third")
			return nil, errors.New("must not be called")
		}},
	}

	src, err := Acquire(context.Background(), config.Config{}, strategies)
	require.NoError(t, err)
	assert.Same(t, expected, src)
	assert.Equal(t, []string{"first", "second"}, tried)
}

func TestAcquireAllStrategiesFail(t *testing.T) {
	server := newArchiveServer(t, nil)
	cfg := config.Config{
		RepoURL: server.URL + "/org/missing",
		Branch:  "main",
	}

	src, err := Acquire(context.Background(), cfg, DefaultStrategies())
	require.Nil(t, src)
	var acquireErr *AcquireError
	require.ErrorAs(t, err, &acquireErr)
	require.Len(t, acquireErr.Failures, 2)
	assert.Equal(t, "archive download", acquireErr.Failures[0].Strategy)
	assert.Equal(t, "git clone", acquireErr.Failures[1].Strategy)

	assert.Contains(t, err.Error(), "archive download: HTTP request error: 404 Not Found")
	assert.Contains(t, err.Error(), "git clone: ")
	assert.Contains(t, err.Error(), "CREATE_APPRAISE_USE_BUNDLED=1")
}

func TestAcquireBundled(t *testing.T) {
	strategies := []Strategy{
		{Name: "network", Fetch: func(context.Context, config.Config) (*Source, error) {
			t.Fatal("network strategy must not be used")
			return nil, nil
		}},
	}

	src, err := Acquire(context.Background(), config.Config{
		UseBundled:   true,
		TemplatePath: "templates/default",
	}, strategies)
	require.NoError(t, err)
	defer src.Close()
	assert.Equal(t, OriginBundled, src.Origin)

	root, err := TemplateRoot(src, "templates/default")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "package.json"))
	assert.FileExists(t, filepath.Join(root, ".gitignore"))

	stat, err := os.Stat(filepath.Join(root, "package.json"))
	require.NoError(t, err)
	assert.NotZero(t, stat.Mode().Perm()&0o200, "bundled files must be writable")
}

func TestTemplateRoot(t *testing.T) {
	src := &Source{Root: t.TempDir(), Origin: OriginArchive}
	require.NoError(t, os.MkdirAll(filepath.Join(src.Root, "templates", "default"), 0755))

	root, err := TemplateRoot(src, "templates/default/")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(src.Root, "templates", "default"), root)

	_, err = TemplateRoot(src, "templates/other")
	require.EqualError(t, err,
		`template path "templates/other" is not found in the archive template source`)

	_, err = TemplateRoot(src, "../outside")
	require.EqualError(t, err,
		`template path "../outside" must be relative to the repository root`)

	_, err = TemplateRoot(src, "/etc")
	require.Error(t, err)
}
