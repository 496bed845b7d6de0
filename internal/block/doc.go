// Package block splits a Markdown document into blocks, classifies each block
// and expands it into an htmlnode subtree.
//
// A block is a run of lines with no blank line inside it. Classification is
// decided on the block text alone, in this order (first match wins):
//
//	Heading        "# " to "###### "
//	Code           starts and ends with ```
//	Quote          every line starts with '>'
//	UnorderedList  every line starts with "* " or "- "
//	OrderedList    first line starts with "1. ", every line with "<digits>. "
//	Paragraph      anything else
//
// Inline content of every block except Code is parsed with package inline.
package block
