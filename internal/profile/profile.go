// Package profile renders and reads the bordered COUNTRY PROFILE layout.
//
// The layout is produced by the model; this package supplies the template
// embedded in the prompt and a tolerant parser used to check the answer.
package profile

import (
	"errors"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	Title = "COUNTRY PROFILE"

	// NotAvailable is the literal the model is told to use for missing data.
	NotAvailable = "Not available"

	minInnerWidth = 38
)

// Row labels, in layout order.
const (
	LabelCountry    = "Country"
	LabelCapital    = "Capital"
	LabelLanguage   = "Language"
	LabelPopulation = "Population"
	LabelMustSee    = "Must-See"
	LabelMustTry    = "Must-Try"
	LabelDidYouKnow = "Did You Know"
)

var ErrNoProfile = errors.New("no profile rows found")

// Profile is the answer to a single query. It lives only as long as the
// response it was parsed from.
type Profile struct {
	Country    string
	Capital    string
	Language   string
	Population string
	MustSee    string
	MustTry    string
	DidYouKnow string
}

func (p Profile) facts() [][2]string {
	return [][2]string{
		{LabelCountry, p.Country},
		{LabelCapital, p.Capital},
		{LabelLanguage, p.Language},
		{LabelPopulation, p.Population},
	}
}

func (p Profile) extras() [][2]string {
	return [][2]string{
		{LabelMustSee, p.MustSee},
		{LabelMustTry, p.MustTry},
		{LabelDidYouKnow, p.DidYouKnow},
	}
}

// Missing returns the labels whose value is empty, in layout order.
func (p Profile) Missing() []string {
	var missing []string
	for _, row := range append(p.facts(), p.extras()...) {
		if strings.TrimSpace(row[1]) == "" {
			missing = append(missing, row[0])
		}
	}
	return missing
}

// Template is the layout with bracketed placeholders.
func Template() string {
	return Render(Profile{
		Country:    "[Name]",
		Capital:    "[City]",
		Language:   "[Language]",
		Population: "[Number]",
		MustSee:    "[Attraction]",
		MustTry:    "[Dish] - [Brief description]",
		DidYouKnow: "[Cultural fact]",
	})
}

// Render draws p inside the box. The inner width is at least 38 cells and
// grows to fit the widest row.
func Render(p Profile) string {
	var lines []string
	for _, row := range append(p.facts(), p.extras()...) {
		lines = append(lines, " "+row[0]+": "+row[1]+" ")
	}

	inner := minInnerWidth
	for _, l := range lines {
		inner = max(inner, lipgloss.Width(l))
	}

	rule := strings.Repeat("─", inner)
	var b strings.Builder
	b.WriteString("┌" + rule + "┐\n")
	b.WriteString("│" + center(Title, inner) + "│\n")
	b.WriteString("├" + rule + "┤\n")
	for i, l := range lines {
		if i == len(p.facts()) {
			b.WriteString("├" + rule + "┤\n")
		}
		b.WriteString("│" + padRight(l, inner) + "│\n")
	}
	b.WriteString("└" + rule + "┘")
	return b.String()
}

func center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

var rowPattern = regexp.MustCompile(`^(Country|Capital|Language|Population|Must-See|Must-Try|Did You Know):\s*(.*)$`)

// Parse reads labeled rows out of a model answer. Borders, markdown
// emphasis and code fences around the box are ignored. The first
// occurrence of a label wins.
func Parse(text string) (Profile, error) {
	var p Profile
	found := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.Trim(line, "│|")
		line = strings.TrimSpace(strings.ReplaceAll(line, "**", ""))

		m := rowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[2])
		field := p.field(m[1])
		if *field == "" {
			*field = value
			found++
		}
	}
	if found == 0 {
		return p, ErrNoProfile
	}
	return p, nil
}

func (p *Profile) field(label string) *string {
	switch label {
	case LabelCountry:
		return &p.Country
	case LabelCapital:
		return &p.Capital
	case LabelLanguage:
		return &p.Language
	case LabelPopulation:
		return &p.Population
	case LabelMustSee:
		return &p.MustSee
	case LabelMustTry:
		return &p.MustTry
	default:
		return &p.DidYouKnow
	}
}
