// Package render turns the content document into HTML. Every section is a pure
// projection of its input: the same data always produces the same markup.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/cube"
	"github.com/Zachkp/portfolio/internal/viewer"
)

//go:embed templates/*.html
var templateFS embed.FS

// Section names, also used as template names.
const (
	SectionPage        = "page"
	SectionHero        = "hero"
	SectionCube        = "cube"
	SectionAbout       = "about"
	SectionExperience  = "experience"
	SectionProjects    = "projects"
	SectionProjectCard = "project_card"
	SectionContact     = "contact"
)

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

// New parses the embedded templates.
func New() (r *Renderer, err error) {
	tmpl, err := template.New("portfolio").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		err = errors.Wrap(err, "failed to parse templates")
		return nil, err
	}

	r = &Renderer{
		tmpl: tmpl,
		md:   goldmark.New(),
	}
	return r, nil
}

// Page renders the whole document: header, then hero, about, experience,
// projects and contact.
func (r *Renderer) Page(w io.Writer, site Site, p *content.Portfolio) error {
	return r.execute(w, SectionPage, r.PageData(site, p))
}

// PageData is the template data for SectionPage.
func (r *Renderer) PageData(site Site, p *content.Portfolio) any {
	projects := make([]projectView, 0, len(p.Projects))
	for i, proj := range p.Projects {
		projects = append(projects, r.newProjectView(i, proj, viewer.Hidden))
	}

	return pageView{
		Site:       site,
		Nav:        Nav,
		Hero:       r.newHeroView(site),
		About:      r.newAboutView(p.AboutMe),
		Experience: r.newExperienceViews(p.WorkExperience),
		Projects:   projects,
	}
}

// CubeData is the template data for SectionCube.
func (r *Renderer) CubeData(s cube.State) any {
	return r.newCubeView(s)
}

// ProjectCardData is the template data for SectionProjectCard.
func (r *Renderer) ProjectCardData(i int, p content.Project, s viewer.State) any {
	return r.newProjectView(i, p, s)
}

// Template returns the parsed template set so an HTTP engine can execute the
// section templates by name.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

func (r *Renderer) Hero(w io.Writer, site Site) error {
	return r.execute(w, SectionHero, r.newHeroView(site))
}

// Cube renders the cube mesh in state s. The mesh is swapped on pointer
// events and carries its own state in data attributes; the stage around it
// owns the triggers.
func (r *Renderer) Cube(w io.Writer, s cube.State) error {
	return r.execute(w, SectionCube, r.CubeData(s))
}

func (r *Renderer) About(w io.Writer, a content.AboutMe) error {
	return r.execute(w, SectionAbout, r.newAboutView(a))
}

func (r *Renderer) Experience(w io.Writer, entries []content.WorkExperience) error {
	return r.execute(w, SectionExperience, r.newExperienceViews(entries))
}

// Projects renders the projects section with every document viewer hidden.
func (r *Renderer) Projects(w io.Writer, projects []content.Project) error {
	views := make([]projectView, 0, len(projects))
	for i, p := range projects {
		views = append(views, r.newProjectView(i, p, viewer.Hidden))
	}
	return r.execute(w, SectionProjects, views)
}

// ProjectCard renders card i alone. A project without a document ignores s.
func (r *Renderer) ProjectCard(w io.Writer, i int, p content.Project, s viewer.State) error {
	return r.execute(w, SectionProjectCard, r.ProjectCardData(i, p, s))
}

func (r *Renderer) Contact(w io.Writer, site Site) error {
	return r.execute(w, SectionContact, site)
}

// execute renders into a buffer first so a template error never leaves a
// half-written response.
func (r *Renderer) execute(w io.Writer, name string, data any) (err error) {
	var buf bytes.Buffer
	err = r.tmpl.ExecuteTemplate(&buf, name, data)
	if err != nil {
		err = errors.Wrapf(err, "failed to render %s", name)
		return err
	}

	_, err = buf.WriteTo(w)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	return nil
}

// markdown converts a description to HTML. Raw HTML in the source is
// dropped by goldmark's default renderer.
func (r *Renderer) markdown(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}
