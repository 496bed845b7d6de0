package inline

import (
	"regexp"
	"strings"
)

// Precompiled patterns. Both are lazy so adjacent matches stay separate.
var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

	// Anchored at a candidate '['; the "not preceded by '!'" rule is
	// enforced by findLinks since regexp has no look-behind.
	linkPattern = regexp.MustCompile(`^\[(.*?)\]\((.*?)\)`)
)

// Match is one bracketed pattern found in text.
type Match struct {
	Label  string
	Target string
}

// Extractor describes how to find one bracketed inline pattern, rebuild its
// literal source, and which kind of unit it produces.
type Extractor struct {
	Kind   Kind
	Prefix string // text before the opening '['
	find   func(text string) []Match
}

// Built-in extractors, in the order Parse applies them.
var (
	ImageExtractor = Extractor{Kind: Image, Prefix: "!", find: findImages}
	LinkExtractor  = Extractor{Kind: Link, find: findLinks}
)

// Extract returns all non-overlapping matches in text, left to right.
func (e Extractor) Extract(text string) []Match {
	if e.find == nil {
		return nil
	}
	return e.find(text)
}

// Literal reconstructs the source text of m.
func (e Extractor) Literal(m Match) string {
	return e.Prefix + "[" + m.Label + "](" + m.Target + ")"
}

func findImages(text string) []Match {
	found := imagePattern.FindAllStringSubmatch(text, -1)
	if len(found) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(found))
	for _, f := range found {
		matches = append(matches, Match{Label: f[1], Target: f[2]})
	}
	return matches
}

// findLinks tries every '[' that is not preceded by '!' and resumes scanning
// after each match, so matches never overlap.
func findLinks(text string) []Match {
	var matches []Match
	for i := 0; i < len(text); {
		j := strings.IndexByte(text[i:], '[')
		if j < 0 {
			break
		}
		i += j
		if i > 0 && text[i-1] == '!' {
			i++
			continue
		}
		loc := linkPattern.FindStringSubmatchIndex(text[i:])
		if loc == nil {
			i++
			continue
		}
		matches = append(matches, Match{
			Label:  text[i+loc[2] : i+loc[3]],
			Target: text[i+loc[4] : i+loc[5]],
		})
		i += loc[1]
	}
	return matches
}
