// Package assets loads the HTML templates that wrap rendered pages.
//
// A template is HTML with two placeholders, {{ Title }} and {{ Content }}.
// Only {{ Content }} is required.
//
// Templates come from three places:
//
//	EmbeddedLoader   templates compiled into the binary ("default")
//	DirLoader        {base}/templates/{name}.html on disk
//	AssetResolver    a DirLoader (optional) then the embedded templates
//
// Names may not contain separators or dots, and DirLoader reads through
// os.Root so symlinks cannot reach outside the templates directory.
// LoadTemplateFile reads an explicit template path chosen by the user.
package assets
