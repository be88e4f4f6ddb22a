package home

import (
	"html/template"
	"strings"
)

var htmlPage = template.Must(template.New("home").Parse(`<div>
  <h1>{{.Heading}}</h1>
  <p>{{.Paragraph}}</p>
</div>
`))

// View renders the page for the terminal.
func (p Page) View() string {
	body := p.theme.Heading.Render(Heading) + "\n\n" + p.theme.Paragraph.Render(p.display)
	return p.theme.Panel(body) + "\n" + p.help.View(p.keys) + "\n"
}

// Text renders the heading and the paragraph as plain lines.
func (p Page) Text() string {
	return Heading + "\n" + p.display + "\n"
}

// HTML renders the page as an escaped element tree.
func (p Page) HTML() string {
	var b strings.Builder
	_ = htmlPage.Execute(&b, struct{ Heading, Paragraph string }{Heading, p.display})
	return b.String()
}
