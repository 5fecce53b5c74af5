// Package preview shows the portfolio in the terminal: the cube spinning in
// its own viewport next to a text rendering of the content sections.
package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/cube"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/viewer"
)

const (
	viewportWidth  = 40
	viewportHeight = 20
	// viewportTop is the row the cube viewport starts on, below the title.
	viewportTop = 1
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0f2f2")).Background(lipgloss.Color("#18181b")).Padding(0, 1)
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#71717a"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#b2d8d8"))
	panelStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

// frameMsg carries the rotation reached on an animator tick.
type frameMsg struct {
	frame    int
	rotation cube.Rotation
}

// Model is the bubbletea model for the preview.
type Model struct {
	site      string
	portfolio *content.Portfolio

	cube     cube.State
	rotation cube.Rotation
	frames   int

	selected  int
	documents []viewer.State
}

// New returns a preview model for p.
func New(site string, p *content.Portfolio) Model {
	return Model{
		site:      site,
		portfolio: p,
		documents: make([]viewer.State, len(p.Projects)),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frames = msg.frame
		m.rotation = msg.rotation

	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionMotion:
			if inViewport(msg.X, msg.Y) {
				m.cube = m.cube.Handle(cube.PointerEnter)
			} else {
				m.cube = m.cube.Handle(cube.PointerLeave)
			}
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft && inViewport(msg.X, msg.Y) {
				m.cube = m.cube.Handle(cube.Click)
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "h":
			if m.cube.Hovered {
				m.cube = m.cube.Handle(cube.PointerLeave)
			} else {
				m.cube = m.cube.Handle(cube.PointerEnter)
			}
		case "c":
			m.cube = m.cube.Handle(cube.Click)
		case "tab":
			if n := len(m.documents); n > 0 {
				m.selected = (m.selected + 1) % n
			}
		case "shift+tab":
			if n := len(m.documents); n > 0 {
				m.selected = (m.selected + n - 1) % n
			}
		case "d":
			if m.selected < len(m.documents) && m.portfolio.Projects[m.selected].HasDocument() {
				docs := make([]viewer.State, len(m.documents))
				copy(docs, m.documents)
				docs[m.selected] = docs[m.selected].Toggle()
				m.documents = docs
			}
		}
	}
	return m, nil
}

func inViewport(x, y int) bool {
	return x >= 0 && x < viewportWidth && y >= viewportTop && y < viewportTop+viewportHeight
}

func (m Model) View() string {
	title := titleStyle.Render(m.site + " | portfolio preview")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewCube(), panelStyle.Render(m.viewSections()))
	help := mutedStyle.Render("mouse/h hover  click/c scale  tab select project  d document  q quit")
	return title + "\n" + body + "\n" + help
}

func (m Model) viewCube() string {
	params := m.cube.Params()
	grid := Rasterize(m.rotation, params.Scale, viewportWidth, viewportHeight)

	styles := make([]lipgloss.Style, cube.FaceCount)
	for i, c := range params.Palette {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	var b strings.Builder
	for row, cells := range grid {
		if row > 0 {
			b.WriteByte('\n')
		}
		for start := 0; start < len(cells); {
			end := start
			for end < len(cells) && cells[end] == cells[start] {
				end++
			}
			run := strings.Repeat(string(cells[start].Shade), end-start)
			if f := cells[start].Face; f >= 0 {
				run = styles[f].Render(run)
			}
			b.WriteString(run)
			start = end
		}
	}
	return b.String()
}

func (m Model) viewSections() string {
	p := m.portfolio
	var b strings.Builder

	b.WriteString(headingStyle.Render(p.AboutMe.Title) + "\n")
	if len(p.AboutMe.Skills) > 0 {
		b.WriteString("Skills: " + render.JoinList(p.AboutMe.Skills) + "\n")
	}
	for _, e := range p.AboutMe.Education {
		line := fmt.Sprintf("• %s, %s (%s)", e.Degree, e.University, e.Year)
		if e.Specialization != "" {
			line += " – " + e.Specialization
		}
		b.WriteString(mutedStyle.Render(line) + "\n")
	}

	b.WriteString("\n" + headingStyle.Render("Work Experience") + "\n")
	for _, w := range p.WorkExperience {
		b.WriteString(fmt.Sprintf("%s | %s | %s\n", w.Title, w.Company, w.Year))
		if len(w.Technologies) > 0 {
			b.WriteString(mutedStyle.Render("  Technologies: "+render.JoinList(w.Technologies)) + "\n")
		}
		if w.Achievements != "" {
			b.WriteString(mutedStyle.Render("  Achievements: "+w.Achievements) + "\n")
		}
		if len(w.Topics) > 0 {
			b.WriteString(mutedStyle.Render("  Topics: "+render.JoinList(w.Topics)) + "\n")
		}
	}

	b.WriteString("\n" + headingStyle.Render("Academic Projects") + "\n")
	for i, proj := range p.Projects {
		line := fmt.Sprintf("%s | %s | %s", proj.Title, proj.Type, proj.Year)
		if proj.HasDocument() {
			line += "  [" + m.documents[i].Label() + "]"
		}
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
		if proj.HasDocument() && m.documents[i] == viewer.Shown {
			b.WriteString(mutedStyle.Render("    Document: "+proj.Document) + "\n")
		}
	}

	status := fmt.Sprintf("\nframe %d  rot %.2f/%.2f  hovered=%t clicked=%t",
		m.frames, m.rotation.X, m.rotation.Y, m.cube.Hovered, m.cube.Clicked)
	b.WriteString(mutedStyle.Render(status))
	return b.String()
}
