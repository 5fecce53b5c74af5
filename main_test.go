package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	doc := `
aboutMe:
  title: About
  skills: [Go]
projects:
  - title: Thesis
    document: /assets/thesis.pdf
  - title: Coursework
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"validate", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "ok")
	assert.Contains(t, out.String(), "projects:        2 (1 with documents)")
}

func TestValidateCommandRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"projects": [{}]}`), 0o600))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"validate", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}

func TestLoadSettingsDefaultContent(t *testing.T) {
	logger = zap.NewNop()
	t.Setenv("CONTENT_PATH", "")
	t.Setenv("SITE_NAME", "Jane Roe")

	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&contentPath, "content", "", "")

	cfg, p, err := loadSettings(cmd)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", cfg.SiteName)
	assert.Equal(t, "About Me", p.AboutMe.Title)
}

func TestLoadSettingsContentFlag(t *testing.T) {
	logger = zap.NewNop()
	t.Setenv("CONTENT_PATH", "/does/not/exist.json")

	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"aboutMe": {"title": "From Flag"}}`), 0o600))

	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&contentPath, "content", "", "")
	require.NoError(t, cmd.Flags().Set("content", path))

	cfg, p, err := loadSettings(cmd)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ContentPath)
	assert.Equal(t, "From Flag", p.AboutMe.Title)
}
