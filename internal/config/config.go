// Package config loads treefmt settings from configuration files and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/viper"

	"github.com/bjaus/treefmt"
)

const (
	// FileName is looked up in the home directory and the working directory.
	FileName  = ".treefmt.yaml"
	envPrefix = "TREEFMT"
)

// LoadOptions controls how configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	HomeDirectory    string
	ExplicitFilePath string
	// Environment is consulted instead of the process environment when set.
	Environment map[string]string
}

// Configuration holds rendering defaults.
type Configuration struct {
	Style   string             `mapstructure:"style"`
	Context string             `mapstructure:"context"`
	Glyphs  GlyphConfiguration `mapstructure:"glyphs"`
}

// GlyphConfiguration overrides individual glyphs of the selected style.
type GlyphConfiguration struct {
	Continuation string `mapstructure:"continuation"`
	Terminal     string `mapstructure:"terminal"`
	Branch       string `mapstructure:"branch"`
	Leaf         string `mapstructure:"leaf"`
}

var envKeys = []string{
	"style",
	"context",
	"glyphs.continuation",
	"glyphs.terminal",
	"glyphs.branch",
	"glyphs.leaf",
}

// Load merges the global file, the local (or explicit) file and TREEFMT_*
// environment variables, later sources overriding earlier ones.
func Load(options LoadOptions) (Configuration, error) {
	var merged Configuration

	homeDirectory := options.HomeDirectory
	if homeDirectory == "" {
		if dir, err := os.UserHomeDir(); err == nil {
			homeDirectory = dir
		}
	}
	if homeDirectory != "" {
		global, err := loadFromPath(filepath.Join(homeDirectory, FileName))
		if err != nil {
			return Configuration{}, err
		}
		merged = merged.Merge(global)
	}

	localPath, err := resolveLocalPath(options.WorkingDirectory, options.ExplicitFilePath)
	if err != nil {
		return Configuration{}, err
	}
	if localPath != "" {
		local, err := loadFromPath(localPath)
		if err != nil {
			return Configuration{}, err
		}
		merged = merged.Merge(local)
	}

	return merged.Merge(loadFromEnvironment(options.Environment)), nil
}

func resolveLocalPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		if workingDirectory != "" {
			return filepath.Join(workingDirectory, explicitPath), nil
		}
		absolute, err := filepath.Abs(explicitPath)
		if err != nil {
			return "", fmt.Errorf("resolve configuration path %s: %w", explicitPath, err)
		}
		return absolute, nil
	}
	if workingDirectory == "" {
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		workingDirectory = dir
	}
	return filepath.Join(workingDirectory, FileName), nil
}

func loadFromPath(path string) (Configuration, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Configuration{}, nil
		}
		return Configuration{}, fmt.Errorf("stat configuration %s: %w", path, err)
	}
	if info.IsDir() {
		return Configuration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	if err := reader.ReadInConfig(); err != nil {
		return Configuration{}, fmt.Errorf("read configuration from %s: %w", path, err)
	}
	var config Configuration
	if err := reader.Unmarshal(&config); err != nil {
		return Configuration{}, fmt.Errorf("decode configuration from %s: %w", path, err)
	}
	return config, nil
}

func loadFromEnvironment(environment map[string]string) Configuration {
	reader := viper.New()
	if environment != nil {
		for _, key := range envKeys {
			if value, ok := environment[envName(key)]; ok {
				reader.Set(key, value)
			}
		}
	} else {
		reader.SetEnvPrefix(envPrefix)
		reader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		for _, key := range envKeys {
			// BindEnv only fails without a key.
			_ = reader.BindEnv(key)
		}
	}
	return Configuration{
		Style:   reader.GetString("style"),
		Context: reader.GetString("context"),
		Glyphs: GlyphConfiguration{
			Continuation: reader.GetString("glyphs.continuation"),
			Terminal:     reader.GetString("glyphs.terminal"),
			Branch:       reader.GetString("glyphs.branch"),
			Leaf:         reader.GetString("glyphs.leaf"),
		},
	}
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Merge overlays the non-empty fields of override onto the receiver.
func (c Configuration) Merge(override Configuration) Configuration {
	result := c
	if override.Style != "" {
		result.Style = override.Style
	}
	if override.Context != "" {
		result.Context = override.Context
	}
	result.Glyphs = result.Glyphs.merge(override.Glyphs)
	return result
}

func (g GlyphConfiguration) merge(override GlyphConfiguration) GlyphConfiguration {
	result := g
	if override.Continuation != "" {
		result.Continuation = override.Continuation
	}
	if override.Terminal != "" {
		result.Terminal = override.Terminal
	}
	if override.Branch != "" {
		result.Branch = override.Branch
	}
	if override.Leaf != "" {
		result.Leaf = override.Leaf
	}
	return result
}

// Formats resolves the style and glyph overrides into the glyph pairs to
// render with. An empty style means the default one.
func (c Configuration) Formats() (treefmt.ContextFormat, treefmt.PrefixFormat, error) {
	style := treefmt.StyleUnicode
	if c.Style != "" {
		parsed, err := treefmt.ParseStyle(c.Style)
		if err != nil {
			return treefmt.ContextFormat{}, treefmt.PrefixFormat{}, err
		}
		style = parsed
	}
	contextFormat, prefixFormat := style.Formats()
	if c.Glyphs.Continuation != "" {
		contextFormat.Continuation = c.Glyphs.Continuation
	}
	if c.Glyphs.Terminal != "" {
		contextFormat.Terminal = c.Glyphs.Terminal
	}
	if c.Glyphs.Branch != "" {
		prefixFormat.Branch = c.Glyphs.Branch
	}
	if c.Glyphs.Leaf != "" {
		prefixFormat.Leaf = c.Glyphs.Leaf
	}
	return contextFormat, prefixFormat, nil
}

// WidthMismatches describes glyphs whose display width differs from the
// branch glyph. Rendering does not pad, so mismatched glyphs misalign
// columns.
func WidthMismatches(c treefmt.ContextFormat, p treefmt.PrefixFormat) []string {
	want := runewidth.StringWidth(p.Branch)
	glyphs := []struct {
		name  string
		glyph string
	}{
		{"leaf", p.Leaf},
		{"continuation", c.Continuation},
		{"terminal", c.Terminal},
	}
	var out []string
	for _, g := range glyphs {
		if got := runewidth.StringWidth(g.glyph); got != want {
			out = append(out, fmt.Sprintf("%s glyph %q is %d cells wide, branch glyph is %d", g.name, g.glyph, got, want))
		}
	}
	return out
}
