package views

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/content"
)

// PageFooter renders quick links, contact details and the privacy link.
func PageFooter(c *content.Content) g.Node {
	quick := []string{"Home", "About", "Projects", "Contact"}
	return Footer(
		Class("py-12 bg-gray-900 text-gray-300"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 grid md:grid-cols-3 gap-8"),
			Div(
				H3(Class("text-xl font-bold text-white mb-4"), g.Text(c.Profile.Name)),
				P(Class("text-gray-400"), g.Text(c.Profile.Tagline)),
			),
			Div(
				H4(Class("font-semibold text-white mb-4"), g.Text("Quick Links")),
				Ul(Class("space-y-2"), g.Map(quick, func(l string) g.Node {
					return Li(A(Href("#"+content.Slugify(l)), Class("hover:text-white transition-colors"), g.Text(l)))
				})),
			),
			Div(
				H4(Class("font-semibold text-white mb-4"), g.Text("Contact")),
				g.If(c.Contact.Email != "", P(A(Href("mailto:"+c.Contact.Email), Class("hover:text-white"), g.Text(c.Contact.Email)))),
				g.If(c.Contact.Phone != "", P(g.Text(c.Contact.Phone))),
				g.If(c.Contact.Location != "", P(g.Text(c.Contact.Location))),
			),
		),
		Div(
			Class("mt-8 pt-8 border-t border-gray-800 text-center text-sm text-gray-500"),
			g.Textf("© %d %s. ", time.Now().Year(), c.Profile.Name),
			A(Href("/privacy"), Class("underline hover:text-white"), g.Text("Privacy")),
		),
	)
}
