package views

import (
	"fmt"
	"net/http"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/store"
)

const timeLayout = "2006-01-02 15:04"

func adminShell(pageTitle string, body ...g.Node) g.Node {
	return Document(pageTitle, "", Div(Class("max-w-6xl mx-auto px-4 py-10"), g.Group(body)))
}

// AdminLogin is the login form. errMsg is shown above it when set.
func AdminLogin(errMsg string) g.Node {
	return adminShell("Admin Login",
		Div(
			Class("max-w-md mx-auto mt-20 p-8 bg-white dark:bg-gray-800 rounded-2xl shadow-lg"),
			H1(Class("text-2xl font-bold mb-6"), g.Text("Admin Login")),
			g.If(errMsg != "", notice("bg-red-50 text-red-800 border-red-200 mb-6", errMsg)),
			g.El("form",
				Method("post"),
				Action("/admin/login"),
				Class("space-y-4"),
				Input(Type("text"), Name("username"), Placeholder("Username"), Required(), Class("w-full px-4 py-3 rounded-lg border border-gray-300")),
				Input(Type("password"), Name("password"), Placeholder("Password"), Required(), Class("w-full px-4 py-3 rounded-lg border border-gray-300")),
				Button(Type("submit"), Class("w-full py-3 rounded-lg bg-blue-600 text-white font-semibold"), g.Text("Sign in")),
			),
		),
	)
}

func statCard(label string, v int64) g.Node {
	return Div(
		Class("p-6 bg-white dark:bg-gray-800 rounded-xl shadow"),
		Div(Class("text-sm text-gray-500"), g.Text(label)),
		Div(Class("text-3xl font-bold"), g.Text(strconv.FormatInt(v, 10))),
	)
}

// AdminDashboard shows visitor totals, recent visits and the latest messages.
func AdminDashboard(s *store.Stats, msgs []store.Message) g.Node {
	return adminShell("Admin Dashboard",
		Div(
			Class("flex items-center justify-between mb-8"),
			H1(Class("text-3xl font-bold"), g.Text("Dashboard")),
			Div(
				Class("space-x-4"),
				A(Href("/admin/messages"), Class("text-blue-600"), g.Text("Messages")),
				A(Href("/admin/export/stats"), Class("text-blue-600"), g.Text("Export")),
				A(Href("/admin/logout"), Class("text-gray-600"), g.Text("Log out")),
			),
		),
		Div(
			Class("grid grid-cols-2 md:grid-cols-5 gap-4 mb-10"),
			statCard("Total visits", s.TotalVisitors),
			statCard("Unique visitors", s.UniqueVisitors),
			statCard("Today", s.VisitorsToday),
			statCard("This week", s.VisitorsThisWeek),
			statCard("Messages", s.TotalMessages),
		),
		g.El("form",
			Method("post"),
			Action("/admin/privacy/prune"),
			Class("mb-10"),
			Button(Type("submit"), Class("px-4 py-2 rounded-lg border border-gray-300"), g.Text("Prune expired visitor data")),
		),
		H2(Class("text-xl font-semibold mb-4"), g.Text("Recent visitors")),
		Table(
			Class("w-full text-sm mb-10"),
			THead(Tr(Th(g.Text("When")), Th(g.Text("Visitor")), Th(g.Text("Path")), Th(g.Text("User agent")))),
			TBody(g.Map(s.RecentVisitors, func(v store.Visit) g.Node {
				return Tr(
					Td(g.Text(v.Timestamp.Format(timeLayout))),
					Td(Class("font-mono"), g.Text(v.HashedIP)),
					Td(g.Text(v.Path)),
					Td(Class("truncate max-w-xs"), g.Text(v.UserAgent)),
				)
			})),
		),
		messageList("Latest messages", msgs),
	)
}

// AdminMessages lists the contact inbox.
func AdminMessages(msgs []store.Message) g.Node {
	return adminShell("Messages",
		A(Href("/admin/dashboard"), Class("text-blue-600"), g.Text("Back to dashboard")),
		messageList("Messages", msgs),
	)
}

func messageList(heading string, msgs []store.Message) g.Node {
	return Div(
		H2(Class("text-xl font-semibold my-4"), g.Text(heading)),
		g.If(len(msgs) == 0, P(Class("text-gray-500"), g.Text("No messages yet."))),
		g.Map(msgs, func(m store.Message) g.Node {
			return Div(
				Class("p-4 mb-4 bg-white dark:bg-gray-800 rounded-xl shadow"),
				Div(
					Class("flex justify-between text-sm text-gray-500"),
					Span(g.Text(fmt.Sprintf("%s <%s>", m.Name, m.Email))),
					Span(g.Text(m.ReceivedAt.Format(timeLayout))),
				),
				P(Class("mt-2 whitespace-pre-line"), g.Text(m.Body)),
			)
		}),
	)
}

// Privacy is the visitor data policy page.
func Privacy(retentionDays int) g.Node {
	return Document("Privacy Policy", "",
		Div(
			Class("max-w-3xl mx-auto px-4 py-16 space-y-6 text-gray-700 dark:text-gray-300"),
			H1(Class("text-3xl font-bold text-gray-900 dark:text-white"), g.Text("Privacy Policy")),
			P(g.Text("This site records anonymous page visits to understand how it is used.")),
			Ul(
				Class("list-disc pl-6 space-y-2"),
				Li(g.Text("IP addresses are hashed with a per-process salt before storage and are never kept in raw form.")),
				Li(g.Text("Only the user agent, the requested path and the time of the visit are stored alongside the hash.")),
				Li(g.Text("Requests carrying the Do Not Track header are not recorded.")),
				Li(g.Textf("Visit records are deleted after %d days.", retentionDays)),
				Li(g.Text("Messages sent through the contact form are used only to reply to you.")),
			),
			A(Href("/"), Class("text-blue-600"), g.Text("Back to the portfolio")),
		),
	)
}

// ErrorPage renders a status page.
func ErrorPage(status int, msg string) g.Node {
	return Document(http.StatusText(status), "",
		Div(
			Class("min-h-screen flex flex-col items-center justify-center"),
			H1(Class("text-6xl font-bold"), g.Text(strconv.Itoa(status))),
			P(Class("mt-4 text-xl text-gray-600"), g.Text(msg)),
			A(Href("/"), Class("mt-8 text-blue-600"), g.Text("Go home")),
		),
	)
}
