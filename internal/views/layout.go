package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Document wraps body nodes in the shared page shell. viewID is empty for
// pages without a live view.
func Document(pageTitle, viewID string, body ...g.Node) g.Node {
	return g.Group([]g.Node{
		Doctype(
			HTML(
				Lang("en"),
				Head(
					Meta(Charset("utf-8")),
					Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
					g.El("title", g.Text(pageTitle)),
					Script(Src("https://cdn.tailwindcss.com")),
					Script(Src("https://unpkg.com/htmx.org@1.9.12")),
					Link(Rel("stylesheet"), Href("/static/folio.css")),
					Script(Src("/static/folio.js"), Defer()),
				),
				Body(
					Class("min-h-screen bg-white text-gray-900 dark:bg-gray-900 dark:text-white"),
					g.If(viewID != "", data("view", viewID)),
					g.Group(body),
				),
			),
		),
	})
}
