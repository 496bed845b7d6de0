// Package inline splits a run of Markdown text into typed inline units.
//
// Parsing starts from a single Text unit wrapping the whole input and applies
// a fixed sequence of passes, each of which only touches units that are still
// plain text:
//
//  1. image extraction   ![alt](src)
//  2. link extraction    [label](href), not preceded by '!'
//  3. bold               **text**
//  4. italic             *text*
//  5. code               `text`
//
// The order matters. Images go before links because a link pattern is a
// suffix of an image pattern, and bold goes before italic because '*' is a
// substring of '**'.
//
// Formatting does not nest: once a span is typed it is never split again.
package inline
