// Package project locates and parses the fluo.toml manifest.
package project

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the parsed fluo.toml.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
	Syntax  SyntaxConfig  `toml:"syntax"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	// Entry is the root source file, relative to the manifest directory.
	Entry string `toml:"entry"`
}

type SyntaxConfig struct {
	// AllowKeywordNames разрешает имена правил, совпадающие с ключевыми
	// словами. Диспетчеризация всё равно проигрывает фиксированной
	// грамматике; флаг снимает только ошибку регистрации.
	AllowKeywordNames bool `toml:"allow_keyword_names"`
}

// LoadConfig parses and validates a manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if cfg.Build.Entry == "" {
		cfg.Build.Entry = "src/main.fl"
	}
	return cfg, nil
}
