package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fluo/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new fluo project",
	Long: `Initialize a new fluo project by creating a project manifest (fluo.toml)
and a sample entry point (src/main.fl). If [path|name] is omitted,
initializes the current directory. If a non-existing name is provided,
a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if filepath.IsAbs(arg) {
			target = arg
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		}
	}

	if _, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
	}

	name := filepath.Base(target)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "fluo-project"
	}

	if err := project.Scaffold(target, name); err != nil {
		return err
	}

	fmt.Printf("created %s\n", filepath.Join(target, project.ManifestName))
	fmt.Printf("created %s\n", filepath.Join(target, "src", "main.fl"))
	return nil
}
