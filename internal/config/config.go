package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LayoutMode selects the tiling algorithm for new workspaces.
type LayoutMode string

const (
	LayoutModeMasterStack LayoutMode = "master-stack" // Master pane left, stack on the right.
	LayoutModeMonocle     LayoutMode = "monocle"      // One fullscreen window at a time.
)

// FloatRule forces windows matching a class to start floating.
type FloatRule struct {
	Class string `yaml:"class"`
}

// FullscreenRule forces windows matching a class to start fullscreen.
type FullscreenRule struct {
	Class string `yaml:"class"`
}

// Screen is the fallback screen size used when the display backend cannot
// report one (headless runs, tests).
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Keybindings maps window-manager actions to X key sequences (e.g.
// "Mod4-j"). Empty bindings are disabled.
type Keybindings struct {
	CycleNext        string   `yaml:"cycle_next,omitempty"`
	CyclePrev        string   `yaml:"cycle_prev,omitempty"`
	SwapMaster       string   `yaml:"swap_master,omitempty"`
	ToggleFloat      string   `yaml:"toggle_float,omitempty"`
	ToggleMinimise   string   `yaml:"toggle_minimise,omitempty"`
	ToggleFullscreen string   `yaml:"toggle_fullscreen,omitempty"`
	Workspaces       []string `yaml:"workspaces,omitempty"` // index i switches to workspace i
}

// Config holds the application configuration.
type Config struct {
	LayoutMode      LayoutMode       `yaml:"layout_mode"`
	GapSize         int              `yaml:"gap_size"`
	Screen          Screen           `yaml:"screen"`
	FloatRules      []FloatRule      `yaml:"float_rules,omitempty"`
	FullscreenRules []FullscreenRule `yaml:"fullscreen_rules,omitempty"`
	FocusFollows    bool             `yaml:"focus_follows_mouse"`
	Keybindings     Keybindings      `yaml:"keybindings,omitempty"`
	LogLevel        string           `yaml:"log_level"`
	Display         string           `yaml:"display,omitempty"`
	PersistState    *bool            `yaml:"persist_state,omitempty"`
	SnapshotOnExit  bool             `yaml:"snapshot_on_exit"`
}

func DefaultConfig() *Config {
	return &Config{
		LayoutMode: LayoutModeMasterStack,
		GapSize:    0,
		Screen:     Screen{Width: 800, Height: 600},
		LogLevel:   "info",
	}
}

// GetPersistState returns the effective value, defaulting to true.
func (c *Config) GetPersistState() bool {
	if c == nil || c.PersistState == nil {
		return true
	}
	return *c.PersistState
}

// ValidationError reports an invalid configuration value with its YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	switch c.LayoutMode {
	case LayoutModeMasterStack, LayoutModeMonocle:
	default:
		return &ValidationError{Path: "layout_mode", Err: fmt.Errorf("layout_mode must be one of: master-stack, monocle")}
	}
	if c.GapSize < 0 {
		return &ValidationError{Path: "gap_size", Err: fmt.Errorf("gap_size must be >= 0")}
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return &ValidationError{Path: "screen", Err: fmt.Errorf("screen width and height must be positive")}
	}
	if c.GapSize*2 >= c.Screen.Width || c.GapSize*2 >= c.Screen.Height {
		return &ValidationError{Path: "gap_size", Err: fmt.Errorf("gap_size leaves no room for windows on a %dx%d screen", c.Screen.Width, c.Screen.Height)}
	}
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warning" && c.LogLevel != "error" {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	if len(c.Keybindings.Workspaces) > 4 {
		return &ValidationError{Path: "keybindings.workspaces", Err: fmt.Errorf("at most 4 workspace bindings are supported")}
	}
	for i, rule := range c.FloatRules {
		if rule.Class == "" {
			return &ValidationError{Path: fmt.Sprintf("float_rules[%d].class", i), Err: fmt.Errorf("class must not be empty")}
		}
	}
	for i, rule := range c.FullscreenRules {
		if rule.Class == "" {
			return &ValidationError{Path: fmt.Sprintf("fullscreen_rules[%d].class", i), Err: fmt.Errorf("class must not be empty")}
		}
	}
	return nil
}

// ShouldFloat reports whether a window class matches a float rule.
func (c *Config) ShouldFloat(class string) bool {
	for _, rule := range c.FloatRules {
		if rule.Class == class {
			return true
		}
	}
	return false
}

// ShouldFullscreen reports whether a window class matches a fullscreen rule.
func (c *Config) ShouldFullscreen(class string) bool {
	for _, rule := range c.FullscreenRules {
		if rule.Class == class {
			return true
		}
	}
	return false
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "layerwm", "config.yaml"), nil
}

// Load reads the configuration from LAYERWM_CONFIG or the standard
// location. A missing file yields the defaults.
func Load() (*Config, error) {
	if path := os.Getenv("LAYERWM_CONFIG"); path != "" {
		return LoadFromPath(path)
	}
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the standard location.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}

	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
