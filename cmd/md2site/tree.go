package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/k0kubun/pp"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2site"
)

// runTreeCmd prints the node tree built for one Markdown file.
func runTreeCmd(args []string, env *Environment) error {
	flags, positional, err := parseTreeFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if len(positional) != 1 {
		return fmt.Errorf("%w: tree expects exactly one markdown file, got %d", ErrUsage, len(positional))
	}
	path := positional[0]
	if err := validateMarkdownExtension(path); err != nil {
		return err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	doc, err := md2site.ParseDocument(string(content))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if _, err := pp.Fprintln(env.Stdout, doc); err != nil {
		return fmt.Errorf("printing tree: %w", err)
	}

	if flags.html {
		html, err := md2site.Serialize(doc)
		if err != nil {
			return fmt.Errorf("serializing %s: %w", path, err)
		}
		fmt.Fprintln(env.Stdout, html)
	}
	return nil
}
