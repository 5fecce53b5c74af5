package render

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/cube"
	"github.com/Zachkp/portfolio/internal/viewer"
)

// ListSeparator joins skills, technologies and topics for display.
const ListSeparator = ", "

// Site carries the page-level settings that do not come from the content
// document.
type Site struct {
	Name         string
	ContactEmail string
	CubeFPS      int
}

// NavLink is one in-page anchor in the header.
type NavLink struct {
	Label  string
	Anchor string
}

// Nav is the header navigation, in page order.
var Nav = []NavLink{
	{Label: "About", Anchor: "#about"},
	{Label: "Experience", Anchor: "#experience"},
	{Label: "Projects", Anchor: "#projects"},
	{Label: "Contact", Anchor: "#contact"},
}

type pageView struct {
	Site       Site
	Nav        []NavLink
	Hero       heroView
	About      aboutView
	Experience []experienceView
	Projects   []projectView
}

type heroView struct {
	Spin string
	Cube cubeView
}

type cubeView struct {
	Faces   []faceView
	Scale   string
	Hovered bool
	Clicked bool
}

type faceView struct {
	Index int
	Color string
}

type aboutView struct {
	Title       string
	Description template.HTML
	Skills      string
	Education   []educationView
}

type educationView struct {
	Key            string
	Degree         string
	University     string
	Grade          string
	Year           string
	Specialization string
}

type experienceView struct {
	Key          string
	Title        string
	Company      string
	Year         string
	Logo         string
	Description  template.HTML
	Technologies string
	Achievements string
	Topics       string
}

type projectView struct {
	Key         string
	ID          string
	Title       string
	Type        string
	Year        string
	Description template.HTML
	Document    string
	Shown       bool
	Label       string
	ToggleURL   string
}

// Key is the positional identity of the i-th item of a section. Entries have
// no natural id, so the key only holds while the document is unchanged.
func Key(section string, i int) string {
	return section + "-" + strconv.Itoa(i)
}

// JoinList joins items in source order.
func JoinList(items []string) string {
	return strings.Join(items, ListSeparator)
}

// ProjectCardURL is the fragment endpoint for card i in state s.
func ProjectCardURL(i int, s viewer.State) string {
	return fmt.Sprintf("/projects/%d/card?document=%s", i, s.Param())
}

func (r *Renderer) newCubeView(s cube.State) cubeView {
	params := s.Params()
	faces := make([]faceView, 0, cube.FaceCount)
	for i, c := range params.Palette {
		faces = append(faces, faceView{Index: i, Color: c})
	}
	return cubeView{
		Faces:   faces,
		Scale:   strconv.FormatFloat(params.Scale, 'f', -1, 64),
		Hovered: s.Hovered,
		Clicked: s.Clicked,
	}
}

func (r *Renderer) newHeroView(site Site) heroView {
	return heroView{
		Spin: fmt.Sprintf("%.3fs", cube.SpinPeriod(site.CubeFPS).Seconds()),
		Cube: r.newCubeView(cube.State{}),
	}
}

func (r *Renderer) newAboutView(a content.AboutMe) aboutView {
	v := aboutView{
		Title:       a.Title,
		Description: r.markdown(a.Description),
		Skills:      JoinList(a.Skills),
		Education:   make([]educationView, 0, len(a.Education)),
	}
	for i, e := range a.Education {
		v.Education = append(v.Education, educationView{
			Key:            Key("education", i),
			Degree:         e.Degree,
			University:     e.University,
			Grade:          e.Grade,
			Year:           e.Year,
			Specialization: e.Specialization,
		})
	}
	return v
}

func (r *Renderer) newExperienceViews(entries []content.WorkExperience) []experienceView {
	views := make([]experienceView, 0, len(entries))
	for i, e := range entries {
		views = append(views, experienceView{
			Key:          Key("experience", i),
			Title:        e.Title,
			Company:      e.Company,
			Year:         e.Year,
			Logo:         e.Logo,
			Description:  r.markdown(e.Description),
			Technologies: JoinList(e.Technologies),
			Achievements: e.Achievements,
			Topics:       JoinList(e.Topics),
		})
	}
	return views
}

func (r *Renderer) newProjectView(i int, p content.Project, s viewer.State) projectView {
	v := projectView{
		Key:         Key("project", i),
		ID:          Key("project", i),
		Title:       p.Title,
		Type:        p.Type,
		Year:        p.Year,
		Description: r.markdown(p.Description),
	}
	if !p.HasDocument() {
		return v
	}
	v.Document = p.Document
	v.Shown = bool(s)
	v.Label = s.Label()
	v.ToggleURL = ProjectCardURL(i, s.Toggle())
	return v
}
