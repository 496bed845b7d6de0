package block

import (
	"regexp"
	"strings"
)

// A separator is a line break followed by one or more blank lines.
// Lines holding only spaces or tabs count as blank.
var blankLines = regexp.MustCompile(`\r?\n(?:[ \t]*\r?\n)+`)

// SplitBlocks splits markdown on blank lines. Each block is trimmed and empty
// blocks are dropped.
func SplitBlocks(markdown string) []string {
	var blocks []string
	for _, part := range blankLines.Split(markdown, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		blocks = append(blocks, part)
	}
	return blocks
}

// lines splits a block on '\n', dropping a trailing '\r' from each line.
func lines(block string) []string {
	ls := strings.Split(block, "\n")
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}
