package templates

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"text/template"
)

//go:embed files/*.tmpl
var files embed.FS

const suffix = ".tmpl"

// Embedded implements domain.TemplateSource over the templates compiled into
// the binary.
type Embedded struct {
	fsys fs.FS
}

func New() *Embedded {
	sub, err := fs.Sub(files, "files")
	if err != nil {
		panic(err)
	}
	return &Embedded{fsys: sub}
}

// NewFromFS serves templates from fsys, which must contain <name>.tmpl files.
func NewFromFS(fsys fs.FS) *Embedded {
	return &Embedded{fsys: fsys}
}

// Render executes the named template with data. Missing keys are errors.
func (e *Embedded) Render(name string, data any) ([]byte, error) {
	src, err := fs.ReadFile(e.fsys, name+suffix)
	if err != nil {
		return nil, fmt.Errorf("template %s not found: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Names lists the available template names.
func (e *Embedded) Names() []string {
	entries, err := fs.ReadDir(e.fsys, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, strings.TrimSuffix(entry.Name(), suffix))
		}
	}
	sort.Strings(names)
	return names
}
