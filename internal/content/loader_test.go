package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
aboutMe:
  title: About Me
  description: Hello.
  skills: [Go, SQL]
  education:
    - degree: BSc
      university: Uni
      grade: A
      year: "2020"
workExperience:
  - title: Engineer
    company: Initech
    year: "2020 - 2022"
    logo: /assets/initech.png
    description: Wrote code.
projects: []
`

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.json")
	require.NoError(t, os.WriteFile(path, defaultDocument, 0o600))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "About Me", p.AboutMe.Title)
	assert.Len(t, p.WorkExperience, 2)
	assert.Len(t, p.Projects, 2)
	assert.Equal(t, []string{"JavaScript", "React", "Node.js", "TypeScript", "AWS", "Docker"}, p.AboutMe.Skills)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Engineer", p.WorkExperience[0].Title)
	assert.Empty(t, p.WorkExperience[0].Technologies)
	assert.Empty(t, p.WorkExperience[0].Achievements)
	assert.Empty(t, p.Projects)
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/portfolio.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content file not found")
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"aboutMe": `), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse json content")
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte(`{}`), Format("toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "minimal document",
			doc:  `{"aboutMe": {"title": "About"}}`,
		},
		{
			name:    "missing about title",
			doc:     `{"aboutMe": {"description": "x"}}`,
			wantErr: "AboutMe.Title is required",
		},
		{
			name:    "project without title",
			doc:     `{"aboutMe": {"title": "About"}, "projects": [{"type": "Thesis"}]}`,
			wantErr: "Projects[0].Title is required",
		},
		{
			name:    "education without degree",
			doc:     `{"aboutMe": {"title": "About", "education": [{"year": "2019"}]}}`,
			wantErr: "AboutMe.Education[0].Degree is required",
		},
		{
			name: "optional fields absent",
			doc:  `{"aboutMe": {"title": "About"}, "workExperience": [{"title": "Dev"}], "projects": [{"title": "P"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatJSON)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("content.YML"))
	assert.Equal(t, FormatYAML, FormatFromPath("a/b/content.yaml"))
	assert.Equal(t, FormatJSON, FormatFromPath("content.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("content"))
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.True(t, p.Projects[0].HasDocument())
	assert.False(t, p.Projects[1].HasDocument())
}

func TestStoreReplace(t *testing.T) {
	s := NewStore(Default())
	first := s.Current()

	s.Replace(Portfolio{AboutMe: AboutMe{Title: "New"}})

	assert.Equal(t, "New", s.Current().AboutMe.Title)
	assert.Equal(t, "About Me", first.AboutMe.Title)
}
