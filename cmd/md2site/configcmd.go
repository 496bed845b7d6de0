package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// runConfigCmd prints the configuration a build with the same arguments
// would use, after defaults and flag overrides.
func runConfigCmd(args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	cfg, err := loadBuildConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	contentDir, err := resolveContentDir(positional, cfg)
	if err != nil {
		return err
	}
	cfg.Content.Dir = contentDir

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}
