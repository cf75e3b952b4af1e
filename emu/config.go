package emu

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"sixfive/emu/log"
)

type Config struct {
	Machine MachineConfig `toml:"machine"`
	Clock   ClockConfig   `toml:"clock"`
	Log     LogConfig     `toml:"log"`

	TraceOut io.Writer `toml:"-"`
}

type MachineConfig struct {
	LoadAddress uint16 `toml:"load_address"`
	EntryPoint  uint16 `toml:"entry_point"`
}

type ClockConfig struct {
	Hz          int   `toml:"hz"`           // 0 runs unthrottled
	MaxSteps    int64 `toml:"max_steps"`    // 0 means no limit
	ReportEvery int64 `toml:"report_every"` // 0 disables status reports
}

type LogConfig struct {
	Modules []string `toml:"modules"`
}

// Apply enables debug logs for the configured modules. "all" enables every
// module and "no" disables logging altogether.
func (lc LogConfig) Apply() error {
	var mask log.ModuleMask
	for _, name := range lc.Modules {
		switch name {
		case "all":
			mask = log.ModuleMaskAll
		case "no":
			log.Disable()
			return nil
		default:
			mod, ok := log.ModuleByName(name)
			if !ok {
				return fmt.Errorf("unknown log module %q", name)
			}
			mask |= mod.Mask()
		}
	}
	if mask != 0 {
		log.EnableDebugModules(mask)
	}
	return nil
}

const DefaultFileMode = os.FileMode(0755)

var ConfigDir = sync.OnceValue(func() string {
	cfgdir, err := os.UserConfigDir()
	if err != nil {
		log.ModConfig.Fatalf("failed to get user config directory: %v", err)
	}

	dir := filepath.Join(cfgdir, "sixfive")
	if err := os.MkdirAll(dir, DefaultFileMode); err != nil {
		log.ModConfig.Fatalf("failed to create directory %s: %v", dir, err)
	}
	return dir
})

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Machine: MachineConfig{
			LoadAddress: 0x0200,
			EntryPoint:  0x0200,
		},
		Clock: ClockConfig{
			Hz:          0,
			MaxSteps:    0,
			ReportEvery: 100_000,
		},
	}
}

const cfgFilename = "config.toml"

// ConfigPath returns the path of the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), cfgFilename)
}

// LoadConfig loads the configuration at path. Keys missing from the file keep
// their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return DefaultConfig(), err
	}
	for _, key := range md.Undecoded() {
		log.ModConfig.WarnZ("Unknown config key").
			String("file", path).
			String("key", key.String()).
			End()
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the configuration from the sixfive config
// directory, or provide a default one.
func LoadConfigOrDefault() Config {
	cfg, err := LoadConfig(ConfigPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.ModConfig.WarnZ("Failed to load config, using defaults").
				Error("err", err).
				End()
		}
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig into sixfive config directory.
func SaveConfig(cfg Config) error {
	return SaveConfigFile(ConfigPath(), cfg)
}

// SaveConfigFile writes cfg at path.
func SaveConfigFile(path string, cfg Config) error {
	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0644)
}
