package content

// Portfolio is the whole content document. It is read once and treated as
// immutable afterwards.
type Portfolio struct {
	AboutMe        AboutMe          `json:"aboutMe" yaml:"aboutMe"`
	WorkExperience []WorkExperience `json:"workExperience" yaml:"workExperience" validate:"dive"`
	Projects       []Project        `json:"projects" yaml:"projects" validate:"dive"`
}

type AboutMe struct {
	Title       string      `json:"title" yaml:"title" validate:"required"`
	Description string      `json:"description" yaml:"description"`
	Skills      []string    `json:"skills" yaml:"skills"`
	Education   []Education `json:"education" yaml:"education" validate:"dive"`
}

type Education struct {
	Degree         string `json:"degree" yaml:"degree" validate:"required"`
	University     string `json:"university" yaml:"university"`
	Grade          string `json:"grade" yaml:"grade"`
	Year           string `json:"year" yaml:"year"`
	Specialization string `json:"specialization,omitempty" yaml:"specialization,omitempty"`
}

// WorkExperience is one job. Technologies, Achievements and Topics are optional
// and their card sub-blocks are left out when empty.
type WorkExperience struct {
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Company      string   `json:"company" yaml:"company"`
	Year         string   `json:"year" yaml:"year"`
	Logo         string   `json:"logo" yaml:"logo"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	Achievements string   `json:"achievements,omitempty" yaml:"achievements,omitempty"`
	Topics       []string `json:"topics,omitempty" yaml:"topics,omitempty"`
}

type Project struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Type        string `json:"type" yaml:"type"`
	Year        string `json:"year" yaml:"year"`
	Description string `json:"description" yaml:"description"`
	Document    string `json:"document,omitempty" yaml:"document,omitempty"`
}

// HasDocument reports whether the project links a viewable document.
func (p Project) HasDocument() bool {
	return p.Document != ""
}
