package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"reqparse/internal/http/request"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true).
			MarginTop(1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	weightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

// Request renders a decoded request as titled sections inside a box.
func Request(req *request.Request) string {
	if req.IsEmpty() {
		return boxStyle.Render(sectionStyle.Render("empty request"))
	}

	version, _ := req.Version()
	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s %s HTTP/%s", req.Method(), req.Target(), version)))

	if query := req.QueryParameters(); len(query) > 0 {
		rows := make([][2]string, 0, len(query))
		for _, q := range query {
			rows = append(rows, [2]string{q.Name, valueStyle.Render(q.Value)})
		}
		sections = append(sections, section("Query", rows))
	}

	h := req.Header()
	if fields := h.Fields(); len(fields) > 0 {
		rows := make([][2]string, 0, len(fields))
		for _, name := range fields {
			var values []string
			for _, p := range h.Values(name) {
				v := valueStyle.Render(p.Value)
				if p.Weighted {
					v += weightStyle.Render(fmt.Sprintf(" (q=%g)", p.Quality))
				}
				values = append(values, v)
			}
			rows = append(rows, [2]string{name, strings.Join(values, ", ")})
		}
		sections = append(sections, section("Header", rows))
	}

	if tags := h.Languages(); len(tags) > 0 {
		names := make([]string, 0, len(tags))
		for _, tag := range tags {
			names = append(names, tag.String())
		}
		sections = append(sections, section("Languages", [][2]string{{"preferred", valueStyle.Render(strings.Join(names, " > "))}}))
	}

	if cookies := h.Cookies(); len(cookies) > 0 {
		rows := make([][2]string, 0, len(cookies))
		for _, c := range cookies {
			rows = append(rows, [2]string{c.Name, valueStyle.Render(c.Value)})
		}
		sections = append(sections, section("Cookies", rows))
	}

	c := req.Content()
	var contentRows [][2]string
	add := func(name, value string) {
		if value != "" {
			contentRows = append(contentRows, [2]string{name, valueStyle.Render(value)})
		}
	}
	add("Type", c.MediaType)
	add("Encoding", c.Encoding)
	add("Language", c.Language)
	if c.Length != 0 {
		add("Length", fmt.Sprint(c.Length))
	}
	if c.Location != nil {
		add("Location", c.Location.String())
	}
	add("MD5", c.MD5)
	add("Range", c.Range)
	if len(contentRows) > 0 {
		sections = append(sections, section("Content", contentRows))
	}

	if body := req.Body(); len(body) > 0 {
		sections = append(sections, sectionStyle.Render("Body"), valueStyle.Render(bodyText(body)))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func section(title string, rows [][2]string) string {
	width := 0
	for _, row := range rows {
		width = max(width, lipgloss.Width(row[0]))
	}

	lines := []string{sectionStyle.Render(title)}
	for _, row := range rows {
		name := nameStyle.Width(width).Render(row[0])
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, name, "  ", row[1]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bodyText(body []byte) string {
	if utf8.Valid(body) {
		return string(body)
	}
	return fmt.Sprintf("%d bytes of binary data", len(body))
}
