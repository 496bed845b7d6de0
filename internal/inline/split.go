package inline

import (
	"fmt"
	"strings"
)

// SplitDelimiter re-splits every Text unit on delim. Text between a pair of
// delimiters gets kind; everything else stays Text. Empty fragments are
// dropped. Units of any other kind pass through unchanged.
//
// Returns ErrUnclosedDelimiter if a Text unit holds an odd number of delimiters.
func SplitDelimiter(units []Unit, delim string, kind Kind) ([]Unit, error) {
	out := make([]Unit, 0, len(units))
	for _, u := range units {
		if u.Kind != Text {
			out = append(out, u)
			continue
		}

		parts := strings.Split(u.Text, delim)
		if len(parts)%2 == 0 {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnclosedDelimiter, delim, u.Text)
		}

		for i, part := range parts {
			if part == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, NewText(part))
			} else {
				out = append(out, Unit{Text: part, Kind: kind})
			}
		}
	}
	return out, nil
}

// SplitExtracted replaces every match of e inside Text units with a unit of
// e.Kind, keeping the surrounding text as Text units.
func SplitExtracted(units []Unit, e Extractor) []Unit {
	out := make([]Unit, 0, len(units))
	for _, u := range units {
		if u.Kind != Text {
			out = append(out, u)
			continue
		}

		matches := e.Extract(u.Text)
		if len(matches) == 0 {
			out = append(out, u)
			continue
		}

		rest := u.Text
		for _, m := range matches {
			// one cut per match: identical matches are consumed left to right
			before, after, _ := strings.Cut(rest, e.Literal(m))
			if before != "" {
				out = append(out, NewText(before))
			}
			out = append(out, Unit{Text: m.Label, Kind: e.Kind, URL: m.Target})
			rest = after
		}
		if rest != "" {
			out = append(out, NewText(rest))
		}
	}
	return out
}

// delimiterPasses run after extraction. "**" must precede "*".
var delimiterPasses = []struct {
	delim string
	kind  Kind
}{
	{"**", Bold},
	{"*", Italic},
	{"`", Code},
}

// Parse converts text into a flat sequence of inline units.
func Parse(text string) ([]Unit, error) {
	units := []Unit{NewText(text)}
	for _, e := range []Extractor{ImageExtractor, LinkExtractor} {
		units = SplitExtracted(units, e)
	}

	var err error
	for _, pass := range delimiterPasses {
		units, err = SplitDelimiter(units, pass.delim, pass.kind)
		if err != nil {
			return nil, err
		}
	}
	return units, nil
}
