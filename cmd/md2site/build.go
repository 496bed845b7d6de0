package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// Sentinel errors for the build command.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrCopyStatic  = errors.New("failed to copy static files")
	ErrUnsafeClean = errors.New("refusing to clean output directory")
)

// buildError reports failed pages. It unwraps to ErrPagesFailed and to the
// first page error so the exit code reflects what went wrong.
type buildError struct {
	failed, total int
	first         error
}

func (e *buildError) Error() string {
	return fmt.Sprintf("%d of %d %s failed to build", e.failed, e.total, plural(e.total, "page", "pages"))
}

func (e *buildError) Unwrap() []error {
	return []error{ErrPagesFailed, e.first}
}

// runBuildCmd parses build flags and runs the build.
func runBuildCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return runBuild(ctx, positional, flags, env)
}

// runBuild orchestrates a site build.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadBuildConfig(flags.common.config)
	if err != nil {
		return err
	}

	// CLI wins over config
	mergeFlags(flags, cfg)
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	contentDir, err := resolveContentDir(positionalArgs, cfg)
	if err != nil {
		return err
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	pages, err := discoverPages(contentDir, cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s%s", ErrNoPages, contentDir, hints.ForContentDirectory(contentDir))
	}

	if cfg.Output.Clean {
		if err := cleanOutput(env, cfg.Output.Dir, contentDir, cfg.Static.Dir); err != nil {
			return err
		}
	}

	if !flags.noStatic {
		if err := copyStatic(ctx, cfg.Static.Dir, cfg.Output.Dir, flags.common, env); err != nil {
			return err
		}
	}

	workers := resolveWorkers(cfg.Build.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Building %s %s with %d %s (%s engine)\n",
			humanize.Comma(int64(len(pages))), plural(len(pages), "page", "pages"),
			workers, plural(workers, "worker", "workers"), cfg.Render.Engine)
	}

	start := env.Now()
	results := buildBatch(ctx, gen, pages, workers)
	elapsed := env.Now().Sub(start)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, elapsed, env)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if failed > 0 {
		return &buildError{failed: failed, total: len(pages), first: firstError(results)}
	}
	return nil
}

// loadBuildConfig loads the named config, or returns defaults if name is empty.
func loadBuildConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.clean {
		cfg.Output.Clean = true
	}
	if flags.static != "" {
		cfg.Static.Dir = flags.static
	}
	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}

	// Template flags: a file replaces any configured name and vice versa
	if flags.template.name != "" {
		if isTemplateFile(flags.template.name) {
			cfg.Template.Path = flags.template.name
			cfg.Template.Name = ""
		} else {
			cfg.Template.Name = flags.template.name
			cfg.Template.Path = ""
		}
	}
	if flags.template.assetPath != "" {
		cfg.Template.AssetPath = flags.template.assetPath
	}

	if flags.render.engine != "" {
		cfg.Render.Engine = flags.render.engine
	}
	if flags.render.rewriteLinks {
		cfg.Render.RewriteLinks = true
	}
}

// isTemplateFile reports whether s names a template file rather than a
// template name.
func isTemplateFile(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return fileutil.IsFilePath(s) || ext == ".html" || ext == ".htm"
}

// resolveContentDir returns the positional argument or the configured dir.
func resolveContentDir(args []string, cfg *config.Config) (string, error) {
	switch len(args) {
	case 0:
		return cfg.Content.Dir, nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected at most one content directory, got %d", ErrUsage, len(args))
	}
}

// newGenerator builds a Generator from the merged config.
func newGenerator(cfg *config.Config) (*md2site.Generator, error) {
	opts := []md2site.Option{
		md2site.WithEngine(cfg.Render.Engine),
		md2site.WithLinkRewrite(cfg.Render.RewriteLinks),
	}
	if cfg.Template.AssetPath != "" {
		opts = append(opts, md2site.WithAssetPath(cfg.Template.AssetPath))
	}

	switch {
	case cfg.Template.Path != "":
		path := cfg.Template.Path
		if !fileutil.IsFilePath(path) {
			path = "." + string(filepath.Separator) + path
		}
		opts = append(opts, md2site.WithTemplate(path))
	case cfg.Template.Name != "":
		opts = append(opts, md2site.WithTemplate(cfg.Template.Name))
	}

	gen, err := md2site.NewGenerator(opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing generator: %w", err)
	}
	return gen, nil
}

// cleanOutput removes the output directory. It refuses when the output
// directory holds the working directory or any of keep.
func cleanOutput(env *Environment, outputDir string, keep ...string) error {
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeClean, err)
	}
	if cwd, err := env.Getwd(); err == nil && fileutil.IsPathUnderDir(cwd, absOut) {
		return fmt.Errorf("%w: %s contains the working directory", ErrUnsafeClean, outputDir)
	}
	for _, dir := range keep {
		if dir == "" {
			continue
		}
		absKeep, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if fileutil.IsPathUnderDir(absKeep, absOut) {
			return fmt.Errorf("%w: %s contains %s", ErrUnsafeClean, outputDir, dir)
		}
	}

	if err := os.RemoveAll(absOut); err != nil {
		return fmt.Errorf("cleaning output directory: %w", err)
	}
	return nil
}

// copyStatic copies the static directory into the output directory.
// A missing static directory is not an error.
func copyStatic(ctx context.Context, staticDir, outputDir string, common commonFlags, env *Environment) error {
	if staticDir == "" || !fileutil.DirExists(staticDir) {
		if common.verbose {
			fmt.Fprintf(env.Stderr, "No static directory at %q, skipping\n", staticDir)
		}
		return nil
	}

	files, n, err := fileutil.CopyDir(ctx, staticDir, outputDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCopyStatic, err)
	}

	if !common.quiet {
		fmt.Fprintf(env.Stdout, "Copied %s static %s (%s)\n",
			humanize.Comma(int64(files)), plural(files, "file", "files"), humanize.Bytes(uint64(n)))
	}
	return nil
}

// firstError returns the first page error in input order.
func firstError(results []BuildResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
