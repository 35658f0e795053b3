package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/uniprompt/internal/composer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"UNIPROMPT_CONFIG",
		"UNIPROMPT_DB",
		"UNIPROMPT_LIBRARY_DB",
		"UNIPROMPT_META_INSTRUCTIONS",
		"UNIPROMPT_CORE_HEADING",
		"UNIPROMPT_LOG_USECASES",
		"UNIPROMPT_RENDER_MARKDOWN",
	} {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(dir), cfg)
	assert.Equal(t, filepath.Join(dir, "uniprompt.db"), cfg.LibraryPath())
	assert.Equal(t, composer.DefaultOptions(), cfg.ComposerOptions())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), `
library_db_path: /srv/shared/library.db
meta_instructions: false
core_heading: always
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "uniprompt.db"), cfg.DBPath)
	assert.Equal(t, "/srv/shared/library.db", cfg.LibraryPath())
	assert.False(t, cfg.MetaInstructions)
	assert.Equal(t, composer.CoreHeadingAlways, cfg.CoreHeading)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "meta_instructions: false\nrender_markdown: true\n")

	t.Setenv("UNIPROMPT_CONFIG", path)
	t.Setenv("UNIPROMPT_META_INSTRUCTIONS", "true")
	t.Setenv("UNIPROMPT_LOG_USECASES", "1")
	t.Setenv("UNIPROMPT_DB", "/tmp/u.db")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.True(t, cfg.MetaInstructions)
	assert.True(t, cfg.RenderMarkdown)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, "/tmp/u.db", cfg.DBPath)
}

func TestLoad_InvalidBoolEnvIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("UNIPROMPT_META_INSTRUCTIONS", "maybe")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.MetaInstructions)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("UNIPROMPT_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), "meta_instructions: [oops")

	_, err := Load(dir)
	assert.ErrorContains(t, err, "parsing YAML")
}

func TestLoad_UnknownCoreHeadingFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("UNIPROMPT_CORE_HEADING", "sometimes")

	_, err := Load(t.TempDir())
	assert.ErrorContains(t, err, "unknown core heading policy")
}
