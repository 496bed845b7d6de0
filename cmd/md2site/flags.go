package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// templateFlags holds page template flags.
type templateFlags struct {
	name      string // Name or file path
	assetPath string // Site directory with templates/
}

// renderFlags holds Markdown rendering flags.
type renderFlags struct {
	engine       string
	rewriteLinks bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common   commonFlags
	output   string
	static   string
	workers  int
	clean    bool
	noStatic bool
	template templateFlags
	render   renderFlags
}

// treeFlags holds flags for the tree command.
type treeFlags struct {
	html bool // Also print the serialized HTML
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addTemplateFlags adds template flags to a FlagSet.
func addTemplateFlags(fs *flag.FlagSet, f *templateFlags) {
	fs.StringVarP(&f.name, "template", "t", "", "template name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory containing templates/{name}.html")
}

// addRenderFlags adds rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.engine, "engine", "e", "", "render engine: native, goldmark")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "rewrite relative .md links to .html")
}

// newBuildFlagSet declares the build command flags on a fresh FlagSet.
func newBuildFlagSet(f *buildFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(usage)

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.static, "static", "s", "", "static directory copied into the output")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.clean, "clean", false, "remove the output directory first")
	fs.BoolVar(&f.noStatic, "no-static", false, "skip copying the static directory")

	addCommonFlags(fs, &f.common)
	addTemplateFlags(fs, &f.template)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printBuildUsage(usage) }
	return fs
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f, usage)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseTreeFlags parses tree command flags and returns positional args.
func parseTreeFlags(args []string, usage io.Writer) (*treeFlags, []string, error) {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &treeFlags{}

	fs.BoolVar(&f.html, "html", false, "also print the serialized HTML")
	fs.Usage = func() { printTreeUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
