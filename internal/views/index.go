package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/effects"
	"github.com/Zachkp/folio/internal/page"
)

// Index renders the whole page for a freshly mounted view.
func Index(c *content.Content, viewID string) g.Node {
	return Document(c.Profile.Name+" | Portfolio", viewID,
		navbar(c),
		Hero(c),
		About(c),
		Skills(c, viewID),
		Projects(c, viewID),
		Certifications(c, viewID),
		ContactSection(c, viewID, effects.StatusIdle, effects.Draft{}),
		PageFooter(c),
		Div(ID(page.ProjectSlotID)),
		Div(ID(page.CertSlotID)),
	)
}

func navbar(c *content.Content) g.Node {
	links := []string{"Home", "About", "Skills", "Projects", "Certifications", "Contact"}
	return Nav(
		Class("fixed top-0 inset-x-0 z-40 bg-white/80 dark:bg-gray-900/80 backdrop-blur border-b border-gray-200 dark:border-gray-800"),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 flex h-16 items-center justify-between"),
			A(Href("#home"), Class("text-xl font-bold text-blue-700 dark:text-blue-300"), g.Text(c.Profile.Name)),
			Div(
				Class("hidden md:flex space-x-6"),
				g.Map(links, func(l string) g.Node {
					return A(
						Href("#"+content.Slugify(l)),
						Class("text-gray-600 hover:text-blue-600 dark:text-gray-300 transition-colors"),
						g.Text(l),
					)
				}),
			),
		),
	)
}

// revealSection renders a section that animates in on first sight.
func revealSection(id, classes string, children ...g.Node) g.Node {
	return Section(
		ID(page.SectionID(id)),
		Class(classes+" opacity-0"),
		data("reveal", id),
		g.Group(children),
	)
}

func sectionHeading(title, subtitle string) g.Node {
	return Div(
		Class("text-center mb-16"),
		H2(Class("text-4xl md:text-5xl font-bold mb-6"), g.Text(title)),
		g.If(subtitle != "", P(Class("text-xl text-gray-600 dark:text-gray-300 max-w-3xl mx-auto"), g.Text(subtitle))),
	)
}
