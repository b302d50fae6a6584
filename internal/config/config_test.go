package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/farmflow/farmdash/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func load(t *testing.T, dir string, mutate func(*config.LoadInput)) (config.Config, error) {
	t.Helper()

	input := config.LoadInput{
		WorkDirOverride: dir,
		Env:             map[string]string{"HOME": filepath.Join(dir, "home")},
	}

	if mutate != nil {
		mutate(&input)
	}

	return config.Load(input)
}

func strPtr(s string) *string { return &s }

func Test_Load_Defaults_When_No_Files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := load(t, dir, nil)
	require.NoError(t, err)

	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "auto", cfg.Theme)
	require.Equal(t, "$", cfg.Currency)
	require.Equal(t, "Green Valley Farm", cfg.Farm.Name)
	require.Equal(t, dir, cfg.EffectiveCwd)
	require.Empty(t, cfg.DataFileAbs)
	require.Equal(t, config.Sources{}, cfg.Sources)
	require.True(t, config.Enabled(cfg.Notifications.Email))
	require.False(t, config.Enabled(cfg.Notifications.SMS))
}

func Test_Load_Project_File_With_Comments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	writeFile(t, path, `{
		// local overrides
		"currency": "€",
		"farm": {"name": "Hill Farm"},
		"data_file": "data/farm.yaml",
	}`)

	cfg, err := load(t, dir, nil)
	require.NoError(t, err)

	require.Equal(t, "€", cfg.Currency)
	require.Equal(t, "Hill Farm", cfg.Farm.Name)
	require.Equal(t, "Rural County, State", cfg.Farm.Location)
	require.Equal(t, filepath.Join(dir, "data", "farm.yaml"), cfg.DataFileAbs)
	require.Equal(t, path, cfg.Sources.Project)
}

func Test_Load_Layer_Precedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	xdg := filepath.Join(dir, "xdg")
	globalPath := filepath.Join(xdg, "farmdash", "config.json")

	writeFile(t, globalPath, `{"theme": "dark", "log_level": "info", "profile": {"name": "Global"}, "notifications": {"sms": true}}`)
	writeFile(t, filepath.Join(dir, config.FileName), `{"log_level": "debug", "notifications": {"email": false}}`)

	cfg, err := load(t, dir, func(in *config.LoadInput) {
		in.Env["XDG_CONFIG_HOME"] = xdg
		in.Overrides.Theme = strPtr("light")
	})
	require.NoError(t, err)

	require.Equal(t, "light", cfg.Theme)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "Global", cfg.Profile.Name)
	require.True(t, config.Enabled(cfg.Notifications.SMS))
	require.False(t, config.Enabled(cfg.Notifications.Email))
	require.True(t, config.Enabled(cfg.Notifications.Push))

	want := config.Sources{Global: globalPath, Project: filepath.Join(dir, config.FileName)}
	if diff := cmp.Diff(want, cfg.Sources); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
}

func Test_Load_Home_Fallback_For_Global(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "home", ".config", "farmdash", "config.json"), `{"currency": "£"}`)

	cfg, err := load(t, dir, nil)
	require.NoError(t, err)
	require.Equal(t, "£", cfg.Currency)
}

func Test_Load_Explicit_File_Replaces_Project_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), `{"currency": "€"}`)
	writeFile(t, filepath.Join(dir, "custom.json"), `{"theme": "dark"}`)

	cfg, err := load(t, dir, func(in *config.LoadInput) { in.ConfigPath = "custom.json" })
	require.NoError(t, err)

	require.Equal(t, "$", cfg.Currency)
	require.Equal(t, "dark", cfg.Theme)
	require.Equal(t, filepath.Join(dir, "custom.json"), cfg.Sources.Project)
}

func Test_Load_Data_Override(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	abs := filepath.Join(t.TempDir(), "farm.yaml")

	cfg, err := load(t, dir, func(in *config.LoadInput) { in.Overrides.DataFile = strPtr(abs) })
	require.NoError(t, err)
	require.Equal(t, abs, cfg.DataFileAbs)
}

func Test_Load_Errors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		file    string
		mutate  func(*config.LoadInput)
		wantErr error
	}{
		{
			name:    "explicit file missing",
			mutate:  func(in *config.LoadInput) { in.ConfigPath = "nope.json" },
			wantErr: config.ErrConfigFileNotFound,
		},
		{
			name:    "invalid JSONC",
			file:    `{invalid json}`,
			wantErr: config.ErrConfigInvalid,
		},
		{
			name:    "wrong type",
			file:    `{"theme": 3}`,
			wantErr: config.ErrConfigInvalid,
		},
		{
			name:    "top-level array",
			file:    `["theme", "dark"]`,
			wantErr: config.ErrConfigInvalid,
		},
		{
			name:    "empty data file in file",
			file:    `{"data_file": ""}`,
			wantErr: config.ErrDataFileEmpty,
		},
		{
			name:    "empty currency",
			file:    `{"currency": ""}`,
			wantErr: config.ErrCurrencyEmpty,
		},
		{
			name:    "empty data file flag",
			mutate:  func(in *config.LoadInput) { in.Overrides.DataFile = strPtr("") },
			wantErr: config.ErrDataFileEmpty,
		},
		{
			name:    "unknown theme",
			file:    `{"theme": "neon"}`,
			wantErr: config.ErrUnknownTheme,
		},
		{
			name:    "unknown log level flag",
			mutate:  func(in *config.LoadInput) { in.Overrides.LogLevel = strPtr("trace") },
			wantErr: config.ErrUnknownLogLevel,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if tt.file != "" {
				writeFile(t, filepath.Join(dir, config.FileName), tt.file)
			}

			_, err := load(t, dir, tt.mutate)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_Load_Null_File_Keeps_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.FileName), "// nothing set yet\nnull\n")

	cfg, err := load(t, dir, nil)
	require.NoError(t, err)

	require.Equal(t, "$", cfg.Currency)
	require.Equal(t, "auto", cfg.Theme)
	require.Equal(t, filepath.Join(dir, config.FileName), cfg.Sources.Project)
}

func Test_Load_Global_Unreadable_Is_Error(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// A directory where the file should be cannot be read.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "home", ".config", "farmdash", "config.json"), 0o750))

	_, err := load(t, dir, nil)
	require.ErrorIs(t, err, config.ErrConfigFileRead)
}
