package views

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/page"
)

// Hero renders the landing section. The headline starts empty and is typed
// in by frames once the stream attaches.
func Hero(c *content.Content) g.Node {
	p := c.Profile
	return Section(
		ID("home"),
		Class("min-h-screen relative flex items-center justify-center pt-24 pb-16 bg-gradient-to-br from-slate-50 via-blue-50/30 to-indigo-50/20 dark:from-gray-900 dark:via-slate-900 dark:to-gray-900"),
		Div(
			Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 grid lg:grid-cols-2 gap-16 items-center"),
			Div(
				Class("text-center lg:text-left"),
				g.If(p.Title != "", Div(Class("mb-6"),
					Span(Class("inline-flex items-center px-6 py-3 bg-white dark:bg-gray-800 border border-blue-200 dark:border-blue-800 text-blue-700 dark:text-blue-300 rounded-lg text-sm font-semibold shadow-sm"), g.Text(p.Title)),
				)),
				H1(Class("mb-8 text-4xl md:text-6xl xl:text-7xl font-bold tracking-tight"), g.Text(p.Name)),
				P(
					Class("mb-10 text-lg md:text-xl lg:text-2xl text-gray-600 dark:text-gray-300 font-medium leading-relaxed max-w-2xl min-h-[4rem]"),
					g.Attr("aria-label", p.Headline),
					Span(ID(page.HeroTypedID)),
					Span(ID(page.HeroCursorID), Class("transition-opacity duration-100 text-blue-600"), g.Attr("aria-hidden", "true"), g.Text("|")),
				),
				highlights(c.Highlights),
				g.If(p.Location != "", P(Class("mb-12 text-lg font-medium text-gray-600 dark:text-gray-400"), g.Text(p.Location))),
				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center lg:justify-start mb-12"),
					A(Href("#projects"), Class("px-8 py-4 bg-blue-600 hover:bg-blue-700 text-white rounded-lg font-semibold shadow-lg transition-all"), g.Text("View Portfolio")),
					g.If(p.Resume != "", A(
						Href(p.Resume),
						g.Attr("download", p.ResumeName),
						Class("px-8 py-4 border-2 border-gray-300 dark:border-gray-600 rounded-lg font-semibold transition-all"),
						g.Text("Download Resume"),
					)),
				),
				socials(p.Socials),
			),
			g.If(p.Photo != "", Div(
				Class("flex justify-center"),
				Img(Src(p.Photo), Alt(p.Name), Class("w-72 h-72 lg:w-96 lg:h-96 rounded-2xl object-cover shadow-2xl")),
			)),
		),
	)
}

func highlights(hs []content.Highlight) g.Node {
	if len(hs) == 0 {
		return g.Group(nil)
	}
	return Div(
		Class("grid grid-cols-1 md:grid-cols-3 gap-6 mb-10"),
		g.Map(hs, func(h content.Highlight) g.Node {
			return Div(
				Class("text-center p-6 bg-white dark:bg-gray-800 rounded-xl border-2 border-blue-200 dark:border-blue-800 shadow-sm hover:shadow-md transition-all duration-300 hover:-translate-y-1"),
				Div(Class("text-lg font-bold"), g.Text(h.Label)),
				Div(Class("text-sm text-gray-500 dark:text-gray-400 font-medium"), g.Text(h.Sublabel)),
			)
		}),
	)
}

func socials(links []content.Link) g.Node {
	return Div(
		Class("flex justify-center lg:justify-start space-x-4"),
		g.Map(links, func(l content.Link) g.Node {
			return A(
				Href(l.URL),
				g.Attr("aria-label", l.Label),
				g.If(external(l.URL), Target("_blank")),
				g.If(external(l.URL), Rel("noopener noreferrer")),
				Class("px-4 py-2 bg-white dark:bg-gray-800 border border-gray-200 dark:border-gray-700 rounded-lg shadow-sm hover:shadow-md transition-all"),
				g.Text(l.Label),
			)
		}),
	)
}

func external(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// About renders the bio, the count-up statistics and the education timeline.
func About(c *content.Content) g.Node {
	stats := make([]g.Node, 0, len(c.Stats))
	for i, s := range c.Stats {
		// The first frame of a count-up is its zero value.
		start := "0"
		if t, err := s.Target(); err == nil {
			start = t.Render(0)
		}
		stats = append(stats, Div(
			Class("text-center p-6 bg-white dark:bg-gray-800 rounded-xl shadow-lg"),
			Div(ID(page.StatID(i)), Class("text-3xl font-bold text-blue-600 dark:text-blue-400 mb-2"), g.Text(start)),
			Div(Class("text-gray-600 dark:text-gray-300 font-medium"), g.Text(s.Label)),
		))
	}

	return revealSection("about", "py-20 bg-gray-50 dark:bg-gray-800",
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeading("About Me", c.Profile.Tagline),
			Div(
				Class("grid lg:grid-cols-2 gap-12 items-start"),
				Div(
					P(Class("text-lg text-gray-700 dark:text-gray-300 leading-relaxed mb-8 whitespace-pre-line"), g.Text(c.Profile.Bio)),
					Div(Class("grid grid-cols-2 gap-6"), g.Group(stats)),
				),
				Div(
					H3(Class("text-2xl font-bold mb-6"), g.Text("Education")),
					Div(
						Class("space-y-6"),
						g.Map(c.Education, func(e content.Education) g.Node {
							return Div(
								Class("p-6 bg-white dark:bg-gray-900 rounded-xl shadow-md border-l-4 border-blue-600"),
								H4(Class("text-lg font-semibold"), g.Text(e.Title)),
								P(Class("text-gray-600 dark:text-gray-400"), g.Text(e.Institution)),
								Div(
									Class("flex justify-between mt-2 text-sm"),
									Span(Class("text-gray-500"), g.Text(e.Period)),
									Span(Class("font-semibold text-blue-600 dark:text-blue-400"), g.Text(e.Score)),
								),
							)
						}),
					),
				),
			),
		),
	)
}
