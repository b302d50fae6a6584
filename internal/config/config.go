// Package config loads farmdash configuration from layered JSONC files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/tailscale/hujson"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".farmdash.json"

// Accepted values for Theme and LogLevel.
var (
	Themes    = []string{"auto", "light", "dark"}
	LogLevels = []string{"debug", "info", "warn", "error"}
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	DataFile      string        `json:"data_file,omitempty"` //nolint:tagliatelle // snake_case config keys
	LogLevel      string        `json:"log_level,omitempty"` //nolint:tagliatelle // snake_case config keys
	Theme         string        `json:"theme,omitempty"`
	Currency      string        `json:"currency,omitempty"`
	Profile       Profile       `json:"profile"`
	Farm          FarmDetails   `json:"farm"`
	Notifications Notifications `json:"notifications"`

	// Resolved (computed, not serialized)
	EffectiveCwd string `json:"-"`
	DataFileAbs  string `json:"-"` // empty when the built-in sample data is used

	Sources Sources `json:"-"`
}

// Profile is the account shown on the settings page.
type Profile struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// FarmDetails describes the farm itself.
type FarmDetails struct {
	Name        string `json:"name,omitempty"`
	Location    string `json:"location,omitempty"`
	TotalArea   string `json:"total_area,omitempty"` //nolint:tagliatelle // snake_case config keys
	Established string `json:"established,omitempty"`
}

// Notifications are channel toggles. nil means "not set" so that a later
// layer can switch a channel off.
type Notifications struct {
	Email         *bool `json:"email,omitempty"`
	Push          *bool `json:"push,omitempty"`
	SMS           *bool `json:"sms,omitempty"`
	WeeklyReports *bool `json:"weekly_reports,omitempty"` //nolint:tagliatelle // snake_case config keys
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Theme:    "auto",
		Currency: "$",
		Profile: Profile{
			Name:  "John Farmer",
			Email: "john@greenvalleyfarm.com",
			Phone: "+1 (555) 123-4567",
			Role:  "Farm Manager",
		},
		Farm: FarmDetails{
			Name:        "Green Valley Farm",
			Location:    "Rural County, State",
			TotalArea:   "500 acres",
			Established: "1985",
		},
		Notifications: Notifications{
			Email:         ptr(true),
			Push:          ptr(true),
			SMS:           ptr(false),
			WeeklyReports: ptr(true),
		},
	}
}

func ptr[T any](v T) *T { return &v }

// Enabled dereferences a notification toggle; nil is off.
func Enabled(b *bool) bool { return b != nil && *b }

// globalPath returns $XDG_CONFIG_HOME/farmdash/config.json, falling back to
// ~/.config/farmdash/config.json. Empty if neither variable is set.
func globalPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "farmdash", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "farmdash", "config.json")
	}

	return ""
}

// Overrides are values from command-line flags. A nil field is not set.
type Overrides struct {
	DataFile *string
	LogLevel *string
	Theme    *string
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Overrides       Overrides         // --data, --log-level, --theme
	Env             map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config ($XDG_CONFIG_HOME/farmdash/config.json)
// 3. Project config file (.farmdash.json, if it exists)
// 4. Explicit config file via ConfigPath (replaces 3)
// 5. CLI overrides.
//
// DataFileAbs is resolved against the effective working directory.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	} else if !filepath.IsAbs(workDir) {
		abs, err := filepath.Abs(workDir)
		if err != nil {
			return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
		}

		workDir = abs
	}

	cfg := Default()

	globalCfg, gPath, err := loadGlobal(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = gPath
	cfg = merge(cfg, globalCfg)

	projectCfg, pPath, err := loadProject(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = pPath
	cfg = merge(cfg, projectCfg)

	ov := input.Overrides
	if ov.DataFile != nil {
		if *ov.DataFile == "" {
			return Config{}, ErrDataFileEmpty
		}

		cfg.DataFile = *ov.DataFile
	}

	if ov.LogLevel != nil {
		cfg.LogLevel = *ov.LogLevel
	}

	if ov.Theme != nil {
		cfg.Theme = *ov.Theme
	}

	err = validate(cfg)
	if err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = workDir

	if cfg.DataFile != "" {
		cfg.DataFileAbs = cfg.DataFile
		if !filepath.IsAbs(cfg.DataFileAbs) {
			cfg.DataFileAbs = filepath.Join(workDir, cfg.DataFile)
		}
	}

	return cfg, nil
}

func loadGlobal(env map[string]string) (Config, string, error) {
	path := globalPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadFile(path, false)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadProject loads .farmdash.json from workDir, or the explicit file when
// configPath is set. An explicit file must exist.
func loadProject(workDir, configPath string) (Config, string, error) {
	path := filepath.Join(workDir, FileName)
	mustExist := false

	if configPath != "" {
		path = configPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}

		mustExist = true

		_, statErr := os.Stat(path)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	}

	cfg, loaded, err := loadFile(path, mustExist)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadFile reads one config file. A missing optional file is not an error
// and reports loaded=false.
func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w: %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	// An explicit "" for these keys is a mistake, not "unset".
	var raw map[string]any

	err = json.Unmarshal(standardized, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	for _, key := range []struct {
		name string
		err  error
	}{
		{"data_file", ErrDataFileEmpty},
		{"currency", ErrCurrencyEmpty},
	} {
		if s, ok := raw[key.name].(string); ok && s == "" {
			return Config{}, key.err
		}
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	setString(&base.DataFile, overlay.DataFile)
	setString(&base.LogLevel, overlay.LogLevel)
	setString(&base.Theme, overlay.Theme)
	setString(&base.Currency, overlay.Currency)

	setString(&base.Profile.Name, overlay.Profile.Name)
	setString(&base.Profile.Email, overlay.Profile.Email)
	setString(&base.Profile.Phone, overlay.Profile.Phone)
	setString(&base.Profile.Role, overlay.Profile.Role)

	setString(&base.Farm.Name, overlay.Farm.Name)
	setString(&base.Farm.Location, overlay.Farm.Location)
	setString(&base.Farm.TotalArea, overlay.Farm.TotalArea)
	setString(&base.Farm.Established, overlay.Farm.Established)

	setBool(&base.Notifications.Email, overlay.Notifications.Email)
	setBool(&base.Notifications.Push, overlay.Notifications.Push)
	setBool(&base.Notifications.SMS, overlay.Notifications.SMS)
	setBool(&base.Notifications.WeeklyReports, overlay.Notifications.WeeklyReports)

	return base
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst **bool, v *bool) {
	if v != nil {
		*dst = v
	}
}

func validate(cfg Config) error {
	if !slices.Contains(Themes, cfg.Theme) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, cfg.Theme)
	}

	if !slices.Contains(LogLevels, cfg.LogLevel) {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, cfg.LogLevel)
	}

	return nil
}
