package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.Doctor.MaxWorkers)
	assert.Empty(t, cfg.Doctor.Diagnoses)
	assert.Equal(t, []string{".bitmap", "workspace.jsonc", "bit.json"}, cfg.Workspace.Markers)
	assert.Equal(t, []string{".bit", ".git/bit"}, cfg.Workspace.ScopeDirs)
	assert.Equal(t, "components", cfg.Workspace.ComponentsDir)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_Precedence(t *testing.T) {
	configDir := isolate(t)
	startDir := t.TempDir()

	writeFile(t, filepath.Join(configDir, paths.ConfigFileName), `
[doctor]
max_workers = 2
[output]
format = "json"
width = 100
`)
	writeFile(t, filepath.Join(startDir, paths.WorkspaceConfigFile), `
[doctor]
max_workers = 4
`)

	t.Run("workspace file overrides user file", func(t *testing.T) {
		cfg, err := Load(LoadOptions{StartDir: startDir})
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Doctor.MaxWorkers)
		assert.Equal(t, "json", cfg.Output.Format)
		assert.Equal(t, 100, cfg.Output.Width)
	})

	t.Run("environment overrides files", func(t *testing.T) {
		t.Setenv("BITDOCTOR_DOCTOR_MAX_WORKERS", "8")
		t.Setenv("BITDOCTOR_WORKSPACE_SCOPE_DIRS", "scope,.git/scope")

		cfg, err := Load(LoadOptions{StartDir: startDir})
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Doctor.MaxWorkers)
		assert.Equal(t, []string{"scope", ".git/scope"}, cfg.Workspace.ScopeDirs)
	})

	t.Run("flags override everything", func(t *testing.T) {
		t.Setenv("BITDOCTOR_OUTPUT_FORMAT", "yaml")

		cfg, err := Load(LoadOptions{
			StartDir:  startDir,
			Overrides: map[string]interface{}{"output.format": "text", "doctor.max_workers": 1},
		})
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Output.Format)
		assert.Equal(t, 1, cfg.Doctor.MaxWorkers)
	})
}

func TestLoad_ExplicitUserConfigPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[workspace]\ncomponents_dir = \"envs\"\n")

	cfg, err := Load(LoadOptions{UserConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "envs", cfg.Workspace.ComponentsDir)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("malformed file", func(t *testing.T) {
		configDir := isolate(t)
		writeFile(t, filepath.Join(configDir, paths.ConfigFileName), "[doctor\nmax_workers = ")

		_, err := Load(LoadOptions{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("negative workers", func(t *testing.T) {
		isolate(t)
		t.Setenv("BITDOCTOR_DOCTOR_MAX_WORKERS", "-1")

		_, err := Load(LoadOptions{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("empty markers", func(t *testing.T) {
		isolate(t)

		_, err := Load(LoadOptions{Overrides: map[string]interface{}{"workspace.markers": []string{}}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BITDOCTOR_DOCTOR_MAX_WORKERS", "doctor.max_workers"},
		{"BITDOCTOR_WORKSPACE_COMPONENTS_DIR", "workspace.components_dir"},
		{"BITDOCTOR_OUTPUT_FORMAT", "output.format"},
		{"BITDOCTOR_CONFIG_DIR", ""},
		{"BITDOCTOR_DEBUG", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.in))
		})
	}
}
