package project

import (
	"fmt"
	"os"
	"path/filepath"
)

const manifestTemplate = `[package]
name = %q

[build]
entry = "src/main.fl"

[syntax]
allow_keyword_names = false
`

const mainTemplate = `syntax print -> statement {
    parse { print -> $value ; }
    eval {
        if $value is int {
            ` + "`std::core::print($value);`" + `
        } else {
            comp::raise("Invalid print type " + $value.type);
        }
    }
}

print -> 10;
`

// Scaffold creates a new project directory with a manifest and a sample
// entry file. Refuses to overwrite an existing manifest.
func Scaffold(dir, name string) error {
	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists", manifestPath)
	}

	if err := os.MkdirAll(filepath.Join(dir, "src"), 0o755); err != nil {
		return err
	}
	manifest := fmt.Sprintf(manifestTemplate, name)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "src", "main.fl"), []byte(mainTemplate), 0o644)
}
