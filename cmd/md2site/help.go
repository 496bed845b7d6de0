package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render a content directory into a static site")
	fmt.Fprintln(w, "  tree       Print the parsed node tree of a markdown file")
	fmt.Fprintln(w, "  config     Print the effective build configuration as YAML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [content-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render every .md file under content-dir into an HTML page.")
	fmt.Fprintln(w, "content/a/b.md is written to <output>/a/b.html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content-dir    Markdown directory (default: content.dir or ./content)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: public)")
	fmt.Fprintln(w, "  -s, --static <dir>        Static directory to copy (default: static)")
	fmt.Fprintln(w, "      --no-static           Skip copying static files")
	fmt.Fprintln(w, "      --clean               Remove the output directory first")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "  -t, --template <s>        Template name or file path (default: default)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory containing templates/{name}.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -e, --engine <s>          Engine: native, goldmark (default: native)")
	fmt.Fprintln(w, "      --rewrite-links       Rewrite relative .md links to .html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printTreeUsage prints usage for the tree command.
func printTreeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site tree <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the node tree the native engine builds for a file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --html                Also print the serialized HTML")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "tree":
		printTreeUsage(env.Stdout)
	case "config":
		fmt.Fprintln(env.Stdout, "Usage: md2site config [content-dir] [build flags]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Print the configuration 'md2site build' would use with the same")
		fmt.Fprintln(env.Stdout, "arguments: config file values, defaults and flag overrides merged.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2site help [command]")
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
