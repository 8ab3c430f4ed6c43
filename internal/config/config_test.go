package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/chewxy/math32"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.FOV != 75 {
		t.Errorf("expected fov 75, got %v", cfg.Camera.FOV)
	}
	if cfg.Camera.MinDistance != 20 || cfg.Camera.MaxDistance != 100 {
		t.Errorf("expected distance range [20, 100], got [%v, %v]", cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
	}

	if cfg.Animation.Variant != VariantDual {
		t.Errorf("expected variant %q, got %q", VariantDual, cfg.Animation.Variant)
	}
	if !cfg.Animation.ShowInfo {
		t.Error("expected info panel visible by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 30

camera:
  fov: 60
  damping: 0.1

animation:
  variant: "single"
  show_info: false

debug:
  screenshot_dir: "/tmp/shots"

logging:
  level: "debug"
  log_file: "viewer.log"
  max_backups: 9
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.FPSLimit != 30 {
		t.Errorf("expected fps limit 30, got %d", cfg.Graphics.FPSLimit)
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %v", cfg.Camera.FOV)
	}
	// Unset keys keep their defaults.
	if cfg.Camera.MaxDistance != 100 {
		t.Errorf("expected max distance to keep default 100, got %v", cfg.Camera.MaxDistance)
	}

	if cfg.Animation.Variant != VariantSingle {
		t.Errorf("expected variant single, got %q", cfg.Animation.Variant)
	}
	if cfg.Animation.ShowInfo {
		t.Error("expected show_info false")
	}

	if cfg.Debug.ScreenshotDir != "/tmp/shots" {
		t.Errorf("expected screenshot dir /tmp/shots, got %s", cfg.Debug.ScreenshotDir)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.MaxBackups != 9 {
		t.Errorf("expected max backups 9, got %d", cfg.Logging.MaxBackups)
	}
	if cfg.Logging.MaxSizeMB != 50 {
		t.Errorf("expected max size to keep default 50, got %d", cfg.Logging.MaxSizeMB)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"single variant", func(c *Config) { c.Animation.Variant = VariantSingle }, false},
		{"unknown variant", func(c *Config) { c.Animation.Variant = "spiral" }, true},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, true},
		{"inverted distances", func(c *Config) { c.Camera.MinDistance = 200 }, true},
		{"flat fov", func(c *Config) { c.Camera.FOV = 180 }, true},
		{"no damping", func(c *Config) { c.Camera.Damping = 0 }, false},
		{"full damping", func(c *Config) { c.Camera.Damping = 1 }, true},
		{"overshooting damping", func(c *Config) { c.Camera.Damping = 1.5 }, true},
		{"negative damping", func(c *Config) { c.Camera.Damping = -0.1 }, true},
		{"nan damping", func(c *Config) { c.Camera.Damping = math32.NaN() }, true},
		{"fast rotate", func(c *Config) { c.Camera.RotateSpeed = 3 }, false},
		{"negative rotate speed", func(c *Config) { c.Camera.RotateSpeed = -1 }, true},
		{"zoom disabled", func(c *Config) { c.Camera.ZoomSpeed = 0 }, false},
		{"infinite zoom speed", func(c *Config) { c.Camera.ZoomSpeed = math32.Inf(1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Animation.Variant = VariantSingle
	cfg.Graphics.Width = 1600
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Animation.Variant != VariantSingle || loaded.Graphics.Width != 1600 {
		t.Errorf("saved values not restored: %+v", loaded)
	}
}

func TestSaveIsFoundByLoad(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override via XDG_CONFIG_HOME is linux-only")
	}
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	os.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Animation.ExitOnDone = true
	path, err := cfg.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if found := findConfigFile(); found != path {
		t.Fatalf("findConfigFile() = %q, want saved path %q", found, path)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if !loaded.Animation.ExitOnDone {
		t.Error("exit_on_done not restored from saved config")
	}
}

func TestSaveRequested(t *testing.T) {
	if SaveRequested() {
		t.Fatal("save-config should default to false")
	}
	*flagSave = true
	defer func() { *flagSave = false }()
	if !SaveRequested() {
		t.Error("expected SaveRequested after setting the flag")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "variant flag",
			setup: func() { *flagVariant = VariantSingle },
			verify: func(cfg *Config) {
				if cfg.Animation.Variant != VariantSingle {
					t.Errorf("expected variant single, got %s", cfg.Animation.Variant)
				}
			},
			teardown: func() { *flagVariant = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name:  "fps flag",
			setup: func() { *flagFPS = 60 },
			verify: func(cfg *Config) {
				if cfg.Graphics.FPSLimit != 60 {
					t.Errorf("expected fps limit 60, got %d", cfg.Graphics.FPSLimit)
				}
			},
			teardown: func() { *flagFPS = -1 },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
animation:
  variant: single
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height and variant from file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Animation.Variant != VariantSingle {
		t.Errorf("expected variant single from file, got %s", cfg.Animation.Variant)
	}
}

func TestLoadRejectsInvalidVariant(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("animation:\n  variant: spiral\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for unknown variant")
	}
}
