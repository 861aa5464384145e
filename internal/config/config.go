package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// 界面模式
const (
	ModeTUI   = "tui"
	ModePlain = "plain"
)

// 默认值
const (
	defaultMode      = ModeTUI
	defaultMaxSizeMB = 10
	defaultLevel     = "info"
	defaultSoundDir  = "assets/sounds"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config 记牌器配置
type Config struct {
	UI    UIConfig    `yaml:"ui"`
	Log   LogConfig   `yaml:"log"`
	Sound SoundConfig `yaml:"sound"`
}

// UIConfig 界面配置
type UIConfig struct {
	Mode  string `yaml:"mode"`  // tui 或 plain
	Color *bool  `yaml:"color"` // 表格张数是否着色
}

// ColorEnabled 未配置时默认着色
func (c *UIConfig) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// LogConfig 调试日志配置
type LogConfig struct {
	Dir       string `yaml:"dir"`         // 为空时使用 ~/.landlord-counter
	MaxSizeMB int    `yaml:"max_size_mb"` // 超过该大小时轮转
	Level     string `yaml:"level"`
}

// MaxSizeBytes 返回日志轮转阈值
func (c *LogConfig) MaxSizeBytes() int64 {
	return int64(c.MaxSizeMB) * 1024 * 1024
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// 设置默认值
func (c *Config) applyDefaults() {
	if c.UI.Mode == "" {
		c.UI.Mode = defaultMode
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = defaultMaxSizeMB
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLevel
	}
	if c.Sound.Dir == "" {
		c.Sound.Dir = defaultSoundDir
	}
}

// 环境变量覆盖配置文件
func (c *Config) applyEnv() {
	if v := os.Getenv("COUNTER_UI_MODE"); v != "" {
		c.UI.Mode = v
	}
	if v := os.Getenv("COUNTER_LOG_DIR"); v != "" {
		c.Log.Dir = v
	}
	if v := os.Getenv("COUNTER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("COUNTER_SOUND_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Sound.Enabled = enabled
		}
	}
}

// Validate 校验枚举类配置项
func (c *Config) Validate() error {
	if c.UI.Mode != ModeTUI && c.UI.Mode != ModePlain {
		return fmt.Errorf("unknown ui.mode %q", c.UI.Mode)
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must not be negative, got %d", c.Log.MaxSizeMB)
	}
	return nil
}

// Default 返回默认配置，环境变量中无法通过校验的取值回落为默认值
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnv()
	if cfg.UI.Mode != ModeTUI && cfg.UI.Mode != ModePlain {
		cfg.UI.Mode = defaultMode
	}
	if !slices.Contains(logLevels, cfg.Log.Level) {
		cfg.Log.Level = defaultLevel
	}
	return cfg
}
