package views

import (
	"html"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/effects"
	"github.com/Zachkp/folio/internal/page"
	"github.com/Zachkp/folio/internal/store"
)

func TestIndex(t *testing.T) {
	Convey("Given the default content", t, func() {
		c := content.Default()
		out := String(Index(c, "view-1"))

		Convey("The page carries the view id and the live regions", func() {
			So(strings.ToLower(out), ShouldStartWith, "<!doctype html>")
			So(out, ShouldContainSubstring, `data-view="view-1"`)
			So(out, ShouldContainSubstring, `id="`+page.HeroTypedID+`"`)
			So(out, ShouldContainSubstring, `id="`+page.HeroCursorID+`"`)
			So(out, ShouldContainSubstring, `id="`+page.ProjectSlotID+`"`)
			So(out, ShouldContainSubstring, `id="`+page.CertSlotID+`"`)
		})

		Convey("Every revealable section starts hidden", func() {
			for _, s := range content.Sections {
				So(out, ShouldContainSubstring, `data-reveal="`+s+`"`)
			}
			So(strings.Count(out, `data-reveal=`), ShouldEqual, len(content.Sections))
		})

		Convey("Statistics start at their zero frame", func() {
			So(out, ShouldContainSubstring, `id="stat-0" class="text-3xl font-bold text-blue-600 dark:text-blue-400 mb-2">0.0<`)
			So(out, ShouldContainSubstring, `id="stat-1" class="text-3xl font-bold text-blue-600 dark:text-blue-400 mb-2">0%<`)
		})

		Convey("Cards post hover events into their own slot", func() {
			So(out, ShouldContainSubstring, `hx-post="/views/view-1/hover"`)
			So(out, ShouldContainSubstring, `hx-target="#projects-tactile-braille-hover"`)
			So(out, ShouldContainSubstring, `id="skills-python-hover"`)
			So(out, ShouldContainSubstring, `hx-get="/views/view-1/projects/tactile-braille"`)
			So(out, ShouldContainSubstring, `hx-get="/views/view-1/certificates/nasa-space-apps"`)
		})

		Convey("The contact panel is idle", func() {
			So(out, ShouldContainSubstring, `id="contact-panel"`)
			So(out, ShouldContainSubstring, `<div id="contact-status" data-status="idle">`)
			So(out, ShouldContainSubstring, "Send Message")
			So(out, ShouldNotContainSubstring, "get back to you soon")
		})
	})
}

func TestContactPanel(t *testing.T) {
	Convey("Given each submission state", t, func() {
		draft := effects.Draft{Name: "Ada", Email: "ada@example.com", Message: "Hello <b>"}

		Convey("The panel keeps the draft, escapes it and swaps only its status", func() {
			out := String(ContactPanel("v", effects.StatusIdle, draft))
			So(out, ShouldContainSubstring, `value="Ada"`)
			So(out, ShouldContainSubstring, "Hello &lt;b&gt;")
			So(out, ShouldContainSubstring, `hx-post="/views/v/contact"`)
			So(out, ShouldContainSubstring, `hx-target="#contact-status"`)
			So(out, ShouldContainSubstring, `hx-post="/views/v/contact/draft"`)
		})

		Convey("The status block never carries the inputs", func() {
			for _, s := range []effects.Status{effects.StatusIdle, effects.StatusSending, effects.StatusSuccess, effects.StatusError} {
				out := String(ContactStatus(s))
				So(out, ShouldStartWith, `<div id="contact-status" data-status="`+s.String()+`">`)
				So(out, ShouldNotContainSubstring, "<input")
				So(out, ShouldNotContainSubstring, "<textarea")
			}
		})

		Convey("Sending disables the button", func() {
			out := String(ContactStatus(effects.StatusSending))
			So(out, ShouldContainSubstring, "Sending...")
			So(out, ShouldContainSubstring, "disabled")
		})

		Convey("Success and error show their messages", func() {
			success := String(ContactStatus(effects.StatusSuccess))
			So(success, ShouldContainSubstring, html.EscapeString(SuccessMessage))
			So(success, ShouldContainSubstring, "Message Sent!")
			So(success, ShouldNotContainSubstring, html.EscapeString(ErrorMessage))

			failed := String(ContactStatus(effects.StatusError))
			So(failed, ShouldContainSubstring, html.EscapeString(ErrorMessage))
			So(failed, ShouldContainSubstring, "Error Occurred")
			So(failed, ShouldNotContainSubstring, html.EscapeString(SuccessMessage))
		})
	})
}

func TestOverlaysAndHover(t *testing.T) {
	Convey("Given a project and a certificate", t, func() {
		c := content.Default()
		p, _ := c.Project("smart-lock-uno")
		cert, _ := c.Certificate("nasa-space-apps")

		Convey("Closed overlays render nothing", func() {
			So(String(ProjectModal("v", p, false)), ShouldBeEmpty)
			So(String(CertificateModal("v", cert, false)), ShouldBeEmpty)
		})

		Convey("Open overlays show the record and a close control", func() {
			out := String(ProjectModal("v", p, true))
			So(out, ShouldContainSubstring, p.Title)
			So(out, ShouldContainSubstring, `hx-delete="/views/v/projects"`)

			out = String(CertificateModal("v", cert, true))
			So(out, ShouldContainSubstring, cert.Title)
			So(out, ShouldContainSubstring, `hx-delete="/views/v/certificates"`)
		})

		Convey("Hover decorations follow the hovered flag", func() {
			So(String(ProjectHover(false)), ShouldBeEmpty)
			So(String(ProjectHover(true)), ShouldContainSubstring, "animate-pulse")
			So(String(CertificateHover(true)), ShouldContainSubstring, "animate-pulse")
			So(String(SkillHover(content.Skill{Name: "Go", Level: 70}, true)), ShouldContainSubstring, "70%")
			So(String(SkillHover(content.Skill{Name: "Go", Level: 70}, false)), ShouldBeEmpty)
		})
	})
}

func TestAdminPages(t *testing.T) {
	Convey("Given dashboard data", t, func() {
		stats := &store.Stats{
			TotalVisitors: 12,
			RecentVisitors: []store.Visit{
				{HashedIP: "abcdef0123456789", Path: "/", Timestamp: time.Unix(0, 0).UTC()},
			},
		}
		msgs := []store.Message{{Name: "Ada", Email: "ada@example.com", Body: "hi"}}

		Convey("The dashboard shows totals, visits and messages", func() {
			out := String(AdminDashboard(stats, msgs))
			So(out, ShouldContainSubstring, ">12<")
			So(out, ShouldContainSubstring, "abcdef0123456789")
			So(out, ShouldContainSubstring, "Ada &lt;ada@example.com&gt;")
		})

		Convey("An empty inbox says so", func() {
			So(String(AdminMessages(nil)), ShouldContainSubstring, "No messages yet.")
		})

		Convey("The login page shows its error", func() {
			So(String(AdminLogin("Invalid credentials")), ShouldContainSubstring, "Invalid credentials")
		})

		Convey("The privacy page states the retention", func() {
			So(String(Privacy(365)), ShouldContainSubstring, "deleted after 365 days")
		})
	})
}

func TestRender(t *testing.T) {
	Convey("Render writes html with a content type", t, func() {
		w := httptest.NewRecorder()
		err := Render{Node: ErrorPage(http.StatusNotFound, "gone")}.Render(w)
		So(err, ShouldBeNil)
		So(w.Header().Get("Content-Type"), ShouldEqual, "text/html; charset=utf-8")
		So(w.Body.String(), ShouldContainSubstring, "gone")
	})
}
