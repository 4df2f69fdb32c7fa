package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/effects"
	"github.com/Zachkp/folio/internal/page"
)

// Contact panel copy.
const (
	SuccessMessage = "Thank you for your message! I'll get back to you soon."
	ErrorMessage   = "Something went wrong. Please try again or contact me directly."
)

// ButtonLabel is the submit button text for a submission state.
func ButtonLabel(s effects.Status) string {
	switch s {
	case effects.StatusSending:
		return "Sending..."
	case effects.StatusSuccess:
		return "Message Sent!"
	case effects.StatusError:
		return "Error Occurred"
	default:
		return "Send Message"
	}
}

func buttonClass(s effects.Status) string {
	base := "w-full py-4 rounded-lg font-semibold text-white transition-all duration-300 "
	switch s {
	case effects.StatusSending:
		return base + "bg-gray-400 cursor-not-allowed"
	case effects.StatusSuccess:
		return base + "bg-green-600"
	case effects.StatusError:
		return base + "bg-red-600"
	default:
		return base + "bg-gradient-to-r from-blue-600 to-purple-600 hover:from-blue-700 hover:to-purple-700"
	}
}

// ContactSection renders the contact details next to the live form panel.
func ContactSection(c *content.Content, viewID string, status effects.Status, draft effects.Draft) g.Node {
	info := c.Contact
	return revealSection("contact", "py-20 bg-gray-50 dark:bg-gray-800",
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			sectionHeading("Get In Touch", info.Intro),
			Div(
				Class("grid lg:grid-cols-2 gap-12"),
				Div(
					Class("space-y-6"),
					contactDetail("Email", info.Email, "mailto:"+info.Email),
					contactDetail("Phone", info.Phone, "tel:"+info.Phone),
					contactDetail("Location", info.Location, ""),
					g.If(c.Profile.Available != "", P(Class("text-green-600 dark:text-green-400 font-semibold"), g.Text(c.Profile.Available))),
				),
				ContactPanel(viewID, status, draft),
			),
		),
	)
}

func contactDetail(label, value, href string) g.Node {
	if value == "" {
		return g.Group(nil)
	}
	var shown g.Node = Span(g.Text(value))
	if href != "" {
		shown = A(Href(href), Class("hover:text-blue-600"), g.Text(value))
	}
	return Div(
		Class("p-6 bg-white dark:bg-gray-900 rounded-xl shadow-md"),
		H4(Class("text-sm uppercase tracking-wide text-gray-500 mb-1"), g.Text(label)),
		Div(Class("text-lg font-semibold"), shown),
	)
}

// ContactPanel is the form for one view in a given submission state. Only
// its status block is swapped afterwards, so whatever the visitor is typing
// stays in the inputs.
func ContactPanel(viewID string, status effects.Status, draft effects.Draft) g.Node {
	return Div(
		ID(page.ContactFormID),
		Class("bg-white dark:bg-gray-900 rounded-2xl shadow-lg p-8"),
		g.El("form",
			hx("post", viewPath(viewID, "/contact")),
			hx("target", "#"+page.ContactID),
			hx("swap", "outerHTML"),
			Class("space-y-6"),
			draftField(viewID, "name", "Your Name", "text", draft.Name),
			draftField(viewID, "email", "Your Email", "email", draft.Email),
			draftField(viewID, "message", "Your Message", "", draft.Message),
			ContactStatus(status),
		),
	)
}

// ContactStatus is the submit button and outcome notice. Frames replace it
// whole by its id.
func ContactStatus(status effects.Status) g.Node {
	return Div(
		ID(page.ContactID),
		data("status", status.String()),
		Button(
			Type("submit"),
			Class(buttonClass(status)),
			g.If(status == effects.StatusSending, Disabled()),
			g.Text(ButtonLabel(status)),
		),
		g.If(status == effects.StatusSuccess, notice("bg-green-50 text-green-800 border-green-200", SuccessMessage)),
		g.If(status == effects.StatusError, notice("bg-red-50 text-red-800 border-red-200", ErrorMessage)),
	)
}

func draftField(viewID, field, label, inputType, value string) g.Node {
	id := "contact-" + field
	attrs := []g.Node{
		ID(id),
		Name(field),
		Required(),
		Class("w-full px-4 py-3 rounded-lg border border-gray-300 dark:border-gray-700 bg-white dark:bg-gray-800 focus:ring-2 focus:ring-blue-500"),
		hx("post", viewPath(viewID, "/contact/draft")),
		hx("trigger", "input changed delay:300ms"),
		hx("vals", `{"field":"`+field+`"}`),
		hx("swap", "none"),
	}

	var input g.Node
	if inputType == "" {
		input = Textarea(g.Group(attrs), Rows("5"), g.Text(value))
	} else {
		input = Input(g.Group(attrs), Type(inputType), Value(value))
	}
	return Div(
		g.El("label", g.Attr("for", id), Class("block text-sm font-medium mb-2"), g.Text(label)),
		input,
	)
}

func notice(classes, text string) g.Node {
	return Div(Class("mt-6 p-4 rounded-lg border "+classes), g.Attr("role", "status"), g.Text(text))
}
