package views

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/page"
)

// HoverSlotID is the element a hover response is swapped into. The slot is a
// child of the hovered element so the swap never re-fires mouseenter.
func HoverSlotID(area, key string) string {
	return area + "-" + key + "-hover"
}

func hoverable(viewID, area, key string) g.Node {
	return g.Group([]g.Node{
		hx("post", viewPath(viewID, "/hover")),
		hx("trigger", "mouseenter, mouseleave"),
		hx("vals", fmt.Sprintf("js:{area: %q, key: %q, state: event.type}", area, key)),
		hx("target", "#"+HoverSlotID(area, key)),
		hx("swap", "innerHTML"),
	})
}

// Skills renders the skill categories with proficiency bars.
func Skills(c *content.Content, viewID string) g.Node {
	return revealSection("skills", "py-20",
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeading("Skills & Expertise", ""),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(c.Skills, func(cat content.SkillCategory) g.Node {
					return Div(
						Class("bg-gradient-to-br from-blue-50 to-indigo-50 dark:from-gray-800 dark:to-gray-800 rounded-2xl shadow-lg p-8 border border-gray-200 dark:border-gray-700"),
						H3(Class("text-2xl font-bold mb-6"), g.Text(cat.Title)),
						Div(Class("space-y-5"), g.Map(cat.Skills, func(s content.Skill) g.Node {
							return skillRow(viewID, s)
						})),
					)
				}),
			),
		),
	)
}

func skillRow(viewID string, s content.Skill) g.Node {
	return Div(
		Class("relative"),
		hoverable(viewID, page.AreaSkills, s.Key()),
		Div(
			Class("flex justify-between mb-2"),
			Span(Class("font-semibold text-gray-700 dark:text-gray-300"), g.Text(s.Name)),
			Span(Class("text-sm text-gray-500"), g.Text(strconv.Itoa(s.Level)+"%")),
		),
		Div(
			Class("w-full bg-gray-200 dark:bg-gray-700 rounded-full h-3 overflow-hidden"),
			Div(
				Class("h-3 rounded-full bg-gradient-to-r from-blue-500 to-purple-600 transition-all duration-1000"),
				g.Attr("style", fmt.Sprintf("width: %d%%", s.Level)),
			),
		),
		Div(ID(HoverSlotID(page.AreaSkills, s.Key()))),
	)
}

// SkillHover is the floating level badge shown while a skill is hovered.
func SkillHover(s content.Skill, hovered bool) g.Node {
	if !hovered {
		return g.Group(nil)
	}
	return Div(
		Class("absolute -top-8 right-0 bg-gray-900 dark:bg-white text-white dark:text-gray-900 px-2 py-1 rounded text-xs font-bold animate-bounce"),
		g.Text(strconv.Itoa(s.Level)+"%"),
	)
}

// Projects renders the project cards.
func Projects(c *content.Content, viewID string) g.Node {
	return revealSection("projects", "py-20 bg-gray-50 dark:bg-gray-800",
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeading("Featured Projects", "Real-world work across hardware, software and AI"),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(c.Projects, func(p content.Project) g.Node {
					return projectCard(viewID, p)
				}),
			),
		),
	)
}

func projectCard(viewID string, p content.Project) g.Node {
	return Div(
		Class("group relative bg-white dark:bg-gray-900 rounded-2xl shadow-lg hover:shadow-2xl transition-all duration-500 overflow-hidden border border-gray-200 dark:border-gray-700"),
		hoverable(viewID, page.AreaProjects, p.Slug),
		Div(
			Class("p-8"),
			g.If(p.Category != "", Span(Class("text-xs uppercase tracking-wide font-semibold text-blue-600"), g.Text(p.Category))),
			H3(Class("mt-2 text-2xl font-bold group-hover:text-blue-600 transition-colors"), g.Text(p.Title)),
			P(Class("mt-4 mb-6 text-gray-600 dark:text-gray-300 leading-relaxed whitespace-pre-line"), g.Text(p.Description)),
			tags(p.Tech),
			g.If(p.Impact != "", P(Class("mt-4 text-sm font-semibold text-green-600 dark:text-green-400"), g.Text(p.Impact))),
			Button(
				Type("button"),
				Class("mt-6 px-4 py-2 bg-gradient-to-r from-blue-600 to-purple-600 text-white rounded-lg font-medium"),
				hx("get", viewPath(viewID, "/projects/"+p.Slug)),
				hx("target", "#"+page.ProjectSlotID),
				hx("swap", "innerHTML"),
				g.Text("View Details"),
			),
		),
		Div(ID(HoverSlotID(page.AreaProjects, p.Slug))),
	)
}

// ProjectHover is the decoration drawn over a hovered project card.
func ProjectHover(hovered bool) g.Node {
	if !hovered {
		return g.Group(nil)
	}
	return Div(Class("absolute inset-0 border-2 border-blue-400 rounded-2xl animate-pulse pointer-events-none"))
}

// ProjectModal renders the project overlay, or nothing when closed.
func ProjectModal(viewID string, p content.Project, open bool) g.Node {
	if !open {
		return g.Group(nil)
	}
	return overlay(viewPath(viewID, "/projects"), page.ProjectSlotID,
		Span(Class("text-sm font-semibold text-blue-600"), g.Text(p.Category)),
		H2(Class("mt-2 text-3xl font-bold"), g.Text(p.Title)),
		P(Class("mt-6 text-gray-700 dark:text-gray-300 leading-relaxed whitespace-pre-line"), g.Text(firstNonEmpty(p.FullDescription, p.Description))),
		g.If(len(p.Metrics) > 0, Div(
			Class("mt-8 grid grid-cols-2 md:grid-cols-3 gap-4"),
			g.Map(p.Metrics, func(m content.Metric) g.Node {
				return Div(
					Class("p-4 rounded-xl bg-blue-50 dark:bg-gray-800 text-center"),
					Div(Class("text-2xl font-bold text-blue-600"), g.Text(m.Value)),
					Div(Class("text-sm text-gray-600 dark:text-gray-400"), g.Text(m.Label)),
				)
			}),
		)),
		bulletList("Key Features", p.Features),
		bulletList("Implementation", p.Implementation),
		g.If(len(p.Tech) > 0, Div(Class("mt-8"), H3(Class("text-xl font-semibold mb-3"), g.Text("Technologies")), tags(p.Tech))),
		linkRow(p.Links),
	)
}

// Certifications renders the certificate cards.
func Certifications(c *content.Content, viewID string) g.Node {
	return revealSection("certifications", "py-20",
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeading("Certifications & Achievements", ""),
			Div(
				Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(c.Certificates, func(cert content.Certificate) g.Node {
					return certificateCard(viewID, cert)
				}),
			),
		),
	)
}

func certificateCard(viewID string, cert content.Certificate) g.Node {
	return Div(
		Class("group relative p-8 bg-white dark:bg-gray-800 rounded-2xl shadow-lg hover:shadow-2xl transition-all duration-500 border border-gray-200 dark:border-gray-700 cursor-pointer"),
		hoverable(viewID, page.AreaCertifications, cert.Slug),
		Div(
			hx("get", viewPath(viewID, "/certificates/"+cert.Slug)),
			hx("target", "#"+page.CertSlotID),
			hx("swap", "innerHTML"),
			g.If(cert.Type != "", Span(Class("text-xs uppercase tracking-wide font-semibold text-purple-600"), g.Text(cert.Type))),
			H3(Class("mt-2 text-xl font-bold"), g.Text(cert.Title)),
			P(Class("text-gray-600 dark:text-gray-400"), g.Text(cert.Organization)),
			P(Class("mt-1 text-sm text-gray-500"), g.Text(cert.Date)),
			P(Class("mt-4 text-gray-700 dark:text-gray-300"), g.Text(cert.Description)),
		),
		Div(ID(HoverSlotID(page.AreaCertifications, cert.Slug))),
	)
}

// CertificateHover is the decoration drawn over a hovered certificate card.
func CertificateHover(hovered bool) g.Node {
	if !hovered {
		return g.Group(nil)
	}
	return Div(Class("absolute inset-0 border-2 border-purple-400 rounded-2xl animate-pulse pointer-events-none"))
}

// CertificateModal renders the certificate overlay, or nothing when closed.
func CertificateModal(viewID string, cert content.Certificate, open bool) g.Node {
	if !open {
		return g.Group(nil)
	}
	return overlay(viewPath(viewID, "/certificates"), page.CertSlotID,
		Span(Class("text-sm font-semibold text-purple-600"), g.Text(cert.Type)),
		H2(Class("mt-2 text-3xl font-bold"), g.Text(cert.Title)),
		P(Class("mt-2 text-gray-600 dark:text-gray-400"), g.Text(cert.Organization+" · "+cert.Date)),
		g.If(cert.Image != "", Img(Src(cert.Image), Alt(cert.Title), Class("mt-6 w-full rounded-xl shadow-md"))),
		P(Class("mt-6 text-gray-700 dark:text-gray-300 leading-relaxed"), g.Text(cert.Description)),
		g.If(cert.CredentialID != "", P(Class("mt-4 text-sm text-gray-500"), g.Text("Credential ID: "+cert.CredentialID))),
		g.If(len(cert.Skills) > 0, Div(Class("mt-8"), H3(Class("text-xl font-semibold mb-3"), g.Text("Skills Gained")), tags(cert.Skills))),
		linkRow(cert.Links),
	)
}

func overlay(closePath, slotID string, children ...g.Node) g.Node {
	return Div(
		Class("fixed inset-0 z-50 flex items-center justify-center p-4 bg-black/60 backdrop-blur-sm"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		Div(
			Class("relative w-full max-w-3xl max-h-[90vh] overflow-y-auto bg-white dark:bg-gray-900 rounded-2xl shadow-2xl p-8"),
			Button(
				Type("button"),
				Class("absolute top-4 right-4 text-gray-500 hover:text-gray-900 dark:hover:text-white text-2xl"),
				g.Attr("aria-label", "Close"),
				hx("delete", closePath),
				hx("target", "#"+slotID),
				hx("swap", "innerHTML"),
				g.Text("×"),
			),
			g.Group(children),
		),
	)
}

func tags(items []string) g.Node {
	return Div(
		Class("flex flex-wrap gap-2"),
		g.Map(items, func(t string) g.Node {
			return Span(Class("px-3 py-1 bg-gray-100 dark:bg-gray-700 text-gray-700 dark:text-gray-300 rounded-full text-sm font-medium"), g.Text(t))
		}),
	)
}

func bulletList(heading string, items []string) g.Node {
	if len(items) == 0 {
		return g.Group(nil)
	}
	return Div(
		Class("mt-8"),
		H3(Class("text-xl font-semibold mb-3"), g.Text(heading)),
		Ul(Class("list-disc pl-6 space-y-2 text-gray-700 dark:text-gray-300"), g.Map(items, func(s string) g.Node {
			return Li(g.Text(s))
		})),
	)
}

func linkRow(links []content.Link) g.Node {
	if len(links) == 0 {
		return g.Group(nil)
	}
	return Div(
		Class("mt-8 flex flex-wrap gap-3"),
		g.Map(links, func(l content.Link) g.Node {
			return A(
				Href(l.URL),
				g.If(external(l.URL), Target("_blank")),
				g.If(external(l.URL), Rel("noopener noreferrer")),
				Class("px-4 py-2 rounded-lg border border-gray-300 dark:border-gray-600 font-medium hover:bg-gray-50 dark:hover:bg-gray-800"),
				g.Text(l.Label),
			)
		}),
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
