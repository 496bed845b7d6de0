package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePage    = errors.New("failed to write page")
	ErrPagesFailed  = errors.New("pages failed to build")
)

// PageGenerator is the interface the build needs from md2site.Generator.
type PageGenerator interface {
	Generate(ctx context.Context, input md2site.Input) (*md2site.Result, error)
}

// Compile-time interface implementation check.
var _ PageGenerator = (*md2site.Generator)(nil)

// BuildResult holds the outcome of a single page build.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Bytes      int
	Err        error
	Duration   time.Duration
}

// buildBatch renders pages concurrently. Results keep the order of pages.
// Pages are independent, so one Generator serves all workers.
func buildBatch(ctx context.Context, gen PageGenerator, pages []PageToBuild, workers int) []BuildResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(pages))

	results := make([]BuildResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildResult{
						InputPath: pages[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = buildPage(ctx, gen, pages[idx])
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage renders a single file. Nothing is written unless rendering
// succeeds.
func buildPage(ctx context.Context, gen PageGenerator, p PageToBuild) BuildResult {
	start := time.Now()
	result := BuildResult{
		InputPath:  p.InputPath,
		OutputPath: p.OutputPath,
	}

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	page, err := gen.Generate(ctx, md2site.Input{Markdown: string(content)})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFile(p.OutputPath, page.HTML); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Title = page.Title
	result.Bytes = len(page.HTML)
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the totals of a build.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Bytes     uint64
}

// countResults tallies succeeded and failed pages.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Bytes += uint64(r.Bytes)
	}
	return summary
}

// printResults outputs per-page results and a summary. Returns the number of
// failed pages.
func printResults(results []BuildResult, quiet, verbose bool, elapsed time.Duration, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %s\n", r.InputPath, formatError(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s %q (%s, %v)\n",
				r.InputPath, r.OutputPath, r.Title, humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "\n%s %s built (%s), %s failed in %v\n",
			humanize.Comma(int64(summary.Succeeded)),
			plural(summary.Succeeded, "page", "pages"),
			humanize.Bytes(summary.Bytes),
			humanize.Comma(int64(summary.Failed)),
			elapsed.Round(time.Millisecond))
	}

	return summary.Failed
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
