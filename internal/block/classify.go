package block

import (
	"regexp"
	"strings"
)

const codeFence = "```"

var (
	headingPrefix = regexp.MustCompile(`^(#{1,6}) `)
	orderedPrefix = regexp.MustCompile(`^\d+\.\s`)
)

// Classify returns the type of a trimmed block.
func Classify(block string) Type {
	if m := headingPrefix.FindStringSubmatch(block); m != nil {
		return Type{Kind: Heading, Level: len(m[1])}
	}

	if strings.HasPrefix(block, codeFence) && strings.HasSuffix(block, codeFence) {
		return Type{Kind: Code}
	}

	ls := lines(block)

	if everyLine(ls, isQuoteLine) {
		return Type{Kind: Quote}
	}

	if everyLine(ls, isUnorderedItem) {
		return Type{Kind: UnorderedList}
	}

	// only the first number is checked, "1. a\n1. b" and "1. a\n7. b" both qualify
	if strings.HasPrefix(block, "1. ") && everyLine(ls, isOrderedItem) {
		return Type{Kind: OrderedList}
	}

	return Type{Kind: Paragraph}
}

// isQuoteLine and the item checks reject marker-only lines, which would
// expand to a node with no children.
func isQuoteLine(line string) bool {
	rest, ok := strings.CutPrefix(line, ">")
	return ok && strings.TrimSpace(rest) != ""
}

func isUnorderedItem(line string) bool {
	return hasUnorderedMarker(line) && strings.TrimSpace(line[2:]) != ""
}

func hasUnorderedMarker(line string) bool {
	return strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "- ")
}

func isOrderedItem(line string) bool {
	loc := orderedPrefix.FindStringIndex(line)
	return loc != nil && strings.TrimSpace(line[loc[1]:]) != ""
}

// everyLine reports whether ok holds for every line. It is false for no lines.
func everyLine(ls []string, ok func(string) bool) bool {
	if len(ls) == 0 {
		return false
	}
	for _, l := range ls {
		if !ok(l) {
			return false
		}
	}
	return true
}
