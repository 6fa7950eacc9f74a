// Package config loads declname.toml, the per-project defaults of the
// declname command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"declname/internal/trace"
	"declname/internal/types"
)

// FileName is the name looked up while walking towards the root.
const FileName = "declname.toml"

// Config mirrors declname.toml.
type Config struct {
	Print  PrintConfig  `toml:"print"`
	Output OutputConfig `toml:"output"`
	Trace  TraceConfig  `toml:"trace"`
}

type PrintConfig struct {
	SuppressTemplateArgs bool `toml:"suppress_template_args"`
	Bool                 bool `toml:"bool"`
}

type OutputConfig struct {
	Color          string `toml:"color"`  // auto|on|off
	Format         string `toml:"format"` // text|json|msgpack
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type TraceConfig struct {
	Level    string `toml:"level"`
	Mode     string `toml:"mode"`
	Format   string `toml:"format"`
	Output   string `toml:"output"`
	RingSize int    `toml:"ring_size"` // events kept by ring and both modes
}

// File is a loaded configuration file.
type File struct {
	Path   string
	Root   string
	Config Config
}

var (
	colorModes    = []string{"auto", "on", "off"}
	outputFormats = []string{"text", "json", "msgpack"}
)

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Print: PrintConfig{Bool: true},
		Output: OutputConfig{
			Color:          "auto",
			Format:         "text",
			MaxDiagnostics: 100,
		},
		Trace: TraceConfig{
			Level:    "off",
			Mode:     "stream",
			Format:   "auto",
			Output:   "-",
			RingSize: 4096,
		},
	}
}

// Policy returns the printing policy selected by [print].
func (c Config) Policy() types.Policy {
	return types.Policy{
		CPlusPlus:                          true,
		Bool:                               c.Print.Bool,
		SuppressTemplateArgsInConstructors: c.Print.SuppressTemplateArgs,
	}
}

// Find walks from startDir towards the filesystem root and returns the
// first declname.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest declname.toml above startDir. It reports false
// and no error when there is none. A relative [trace].output is taken
// relative to the directory of the file.
func Discover(startDir string) (*File, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, meta, err := load(path)
	if err != nil {
		return nil, true, err
	}
	f := &File{Path: path, Root: filepath.Dir(path), Config: cfg}
	if out := cfg.Trace.Output; meta.IsDefined("trace", "output") && out != "-" && out != "" && !filepath.IsAbs(out) {
		f.Config.Trace.Output = filepath.Join(f.Root, out)
	}
	return f, true, nil
}

// Load decodes path on top of Default and validates the result. Unknown
// keys are errors.
func Load(path string) (Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (Config, toml.MetaData, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, meta, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := check(meta, &cfg); err != nil {
		return Config{}, meta, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, meta, nil
}

// Parse is Load for in-memory content.
func Parse(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := check(meta, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func check(meta toml.MetaData, cfg *Config) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	where := func(table, key string) string { return "[" + table + "]." + key }
	if !slices.Contains(colorModes, c.Output.Color) {
		return fmt.Errorf("%s must be one of %s, got %q",
			where("output", "color"), strings.Join(colorModes, "|"), c.Output.Color)
	}
	if !slices.Contains(outputFormats, c.Output.Format) {
		return fmt.Errorf("%s must be one of %s, got %q",
			where("output", "format"), strings.Join(outputFormats, "|"), c.Output.Format)
	}
	if c.Output.MaxDiagnostics < 1 || c.Output.MaxDiagnostics > 65535 {
		return fmt.Errorf("%s must be in 1..65535, got %d",
			where("output", "max_diagnostics"), c.Output.MaxDiagnostics)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("%s: %w", where("trace", "level"), err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("%s: %w", where("trace", "mode"), err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("%s: %w", where("trace", "format"), err)
	}
	if c.Trace.RingSize < 1 {
		return fmt.Errorf("%s must be positive, got %d", where("trace", "ring_size"), c.Trace.RingSize)
	}
	return nil
}

// TracerConfig converts [trace] into a tracer configuration.
func (c Config) TracerConfig() (trace.Config, error) {
	level, err := trace.ParseLevel(c.Trace.Level)
	if err != nil {
		return trace.Config{}, err
	}
	mode, err := trace.ParseMode(c.Trace.Mode)
	if err != nil {
		return trace.Config{}, err
	}
	format, err := trace.ParseFormat(c.Trace.Format)
	if err != nil {
		return trace.Config{}, err
	}
	return trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: c.Trace.Output,
		RingSize:   c.Trace.RingSize,
	}, nil
}
