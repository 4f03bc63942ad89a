package generation

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPrompts []byte

// promptSource is the YAML shape of a prompt set.
type promptSource struct {
	Script         string `yaml:"script"`
	Titles         string `yaml:"titles"`
	Thumbnail      string `yaml:"thumbnail"`
	SEODescription string `yaml:"seo_description"`
	Tags           string `yaml:"tags"`
	Timestamps     string `yaml:"timestamps"`
	Speech         string `yaml:"speech"`
}

// promptData is the template input. Unused fields stay empty.
type promptData struct {
	Topic       string
	Description string
	Title       string
	Script      string
	Index       int
	Count       int
}

// Prompts holds the parsed prompt templates.
type Prompts struct {
	script         *template.Template
	titles         *template.Template
	thumbnail      *template.Template
	seoDescription *template.Template
	tags           *template.Template
	timestamps     *template.Template
	speech         *template.Template
}

// LoadPrompts parses the built-in prompt set. When path is non-empty, the
// templates present in that YAML file replace the built-in ones.
func LoadPrompts(path string) (*Prompts, error) {
	var src promptSource
	if err := yaml.Unmarshal(defaultPrompts, &src); err != nil {
		return nil, fmt.Errorf("parse built-in prompts: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read prompts %s: %w", path, err)
		}
		var override promptSource
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("parse prompts %s: %w", path, err)
		}
		src.merge(override)
	}

	p := &Prompts{}
	for _, t := range []struct {
		name string
		text string
		dst  **template.Template
	}{
		{"script", src.Script, &p.script},
		{"titles", src.Titles, &p.titles},
		{"thumbnail", src.Thumbnail, &p.thumbnail},
		{"seo_description", src.SEODescription, &p.seoDescription},
		{"tags", src.Tags, &p.tags},
		{"timestamps", src.Timestamps, &p.timestamps},
		{"speech", src.Speech, &p.speech},
	} {
		if strings.TrimSpace(t.text) == "" {
			return nil, fmt.Errorf("prompt %q is empty", t.name)
		}
		tmpl, err := template.New(t.name).
			Funcs(template.FuncMap{"excerpt": excerpt}).
			Option("missingkey=error").
			Parse(t.text)
		if err != nil {
			return nil, fmt.Errorf("parse prompt %q: %w", t.name, err)
		}
		*t.dst = tmpl
	}
	return p, nil
}

func (s *promptSource) merge(o promptSource) {
	for _, f := range []struct{ dst, src *string }{
		{&s.Script, &o.Script},
		{&s.Titles, &o.Titles},
		{&s.Thumbnail, &o.Thumbnail},
		{&s.SEODescription, &o.SEODescription},
		{&s.Tags, &o.Tags},
		{&s.Timestamps, &o.Timestamps},
		{&s.Speech, &o.Speech},
	} {
		if strings.TrimSpace(*f.src) != "" {
			*f.dst = *f.src
		}
	}
}

func render(t *template.Template, data promptData) (string, error) {
	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render prompt %q: %w", t.Name(), err)
	}
	return sb.String(), nil
}

// excerpt returns the first n runes of s.
func excerpt(n int, s string) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
