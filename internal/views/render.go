// Package views renders the site's markup with gomponents.
package views

import (
	"net/http"
	"strings"

	g "maragu.dev/gomponents"
)

// Render adapts a node to gin's render.Render.
type Render struct {
	Node g.Node
}

// Render writes the node.
func (r Render) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	if r.Node == nil {
		return nil
	}
	return r.Node.Render(w)
}

// WriteContentType sets the HTML content type.
func (r Render) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if header.Get("Content-Type") == "" {
		header.Set("Content-Type", "text/html; charset=utf-8")
	}
}

// String renders a node to a string. Rendering into a builder cannot fail.
func String(n g.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	_ = n.Render(&b)
	return b.String()
}

func hx(name, value string) g.Node {
	return g.Attr("hx-"+name, value)
}

func data(name, value string) g.Node {
	return g.Attr("data-"+name, value)
}

func viewPath(viewID, rest string) string {
	return "/views/" + viewID + rest
}
