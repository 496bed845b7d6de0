package pipeline

import (
	"net/url"
	"path"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Markdown source extensions that are rewritten to .html.
var markdownExtensions = []string{".md", ".markdown"}

// RewriteMarkdownLinks points relative links at Markdown sources to the
// generated pages: a[href] "guide/intro.md#setup" becomes
// "guide/intro.html#setup".
//
// Does NOT rewrite:
//   - absolute URLs, protocol-relative URLs and anchors
//   - img[src] (static assets keep their names)
//
// The fragment is re-rendered by x/net/html, so text is HTML-escaped and void
// elements such as <img> lose their closing tag.
func RewriteMarkdownLinks(fragment string) (string, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteNode(n)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// linkSelector matches anchors that carry a target.
var linkSelector = cascadia.MustCompile("a[href]")

// rewriteNode rewrites the targets of n and every anchor below it.
func rewriteNode(n *html.Node) {
	links := cascadia.QueryAll(n, linkSelector)
	if linkSelector.Match(n) {
		links = append(links, n)
	}
	for _, a := range links {
		for i, attr := range a.Attr {
			if attr.Key == "href" {
				a.Attr[i].Val = rewriteHref(attr.Val)
			}
		}
	}
}

// rewriteHref returns href with a Markdown extension replaced by .html.
// Anything that is not a relative Markdown path is returned unchanged.
func rewriteHref(href string) string {
	if !isRelativeLink(href) {
		return href
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}

	ext := path.Ext(u.Path)
	for _, md := range markdownExtensions {
		if strings.EqualFold(ext, md) {
			u.Path = strings.TrimSuffix(u.Path, ext) + ".html"
			return u.String()
		}
	}
	return href
}

// isRelativeLink returns true if the link may point at a local page.
func isRelativeLink(href string) bool {
	if href == "" {
		return false
	}

	// Skip anchors and protocol-relative URLs
	if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "//") {
		return false
	}

	// Skip anything with a scheme (http:, mailto:, file:, data:)
	if u, err := url.Parse(href); err != nil || u.Scheme != "" {
		return false
	}

	return true
}
