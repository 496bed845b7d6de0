package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for page discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoPages            = errors.New("no markdown files found")
)

// PageToBuild is one Markdown source and the page it produces.
type PageToBuild struct {
	InputPath  string
	OutputPath string
}

// discoverPages finds all Markdown files under contentDir, sorted by path.
// Hidden files and directories (leading ".") are skipped.
func discoverPages(contentDir, outputDir string) ([]PageToBuild, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if err := validateMarkdownExtension(contentDir); err != nil {
			return nil, err
		}
		return []PageToBuild{{
			InputPath:  contentDir,
			OutputPath: resolveOutputPath(contentDir, outputDir, filepath.Dir(contentDir)),
		}}, nil
	}

	var pages []PageToBuild
	err = filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if path != contentDir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdownFile(path) {
			return nil
		}
		pages = append(pages, PageToBuild{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, contentDir),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].InputPath < pages[j].InputPath })
	return pages, nil
}

// resolveOutputPath maps {contentDir}/a/b.md to {outputDir}/a/b.html.
func resolveOutputPath(inputPath, outputDir, contentDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext) + ".html"

	relPath, err := filepath.Rel(contentDir, inputPath)
	if err != nil {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(outputDir, filepath.Dir(relPath), base)
}

// isMarkdownFile reports whether path has a Markdown extension.
func isMarkdownFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
