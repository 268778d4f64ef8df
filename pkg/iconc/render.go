package iconc

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/afero"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	moduleTemplateName = "module.js.tmpl"
	indexTemplateName  = "index.js.tmpl"
)

// ModuleData is the data passed to the module template
type ModuleData struct {
	Name     string // export identifier
	BaseName string // source filename without .svg
	ViewBox  string
	Content  string // minified inner markup, embedded without escaping
}

// IndexEntry is one re-export line of the index
type IndexEntry struct {
	Name     string
	BaseName string
}

// IndexData is the data passed to the index template
type IndexData struct {
	Entries []IndexEntry
}

// jsQuoter escapes the characters that would end or corrupt a single-quoted
// JavaScript string literal. Markup rendered by x/net/html never contains a
// raw quote or newline, so for ordinary icons this is the identity.
var jsQuoter = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

var templateFuncs = template.FuncMap{
	"jsquote": jsQuoter.Replace,
}

// Renderer renders module and index source text
type Renderer struct {
	module *template.Template
	index  *template.Template
}

// NewRenderer creates a Renderer using the embedded Mithril templates
func NewRenderer() (*Renderer, error) {
	return NewRendererFromFiles(nil, "", "")
}

// NewRendererFromFiles creates a Renderer whose module and/or index template
// is read from fsys. An empty path keeps the embedded template.
func NewRendererFromFiles(fsys afero.Fs, modulePath, indexPath string) (*Renderer, error) {
	module, err := loadTemplate(fsys, moduleTemplateName, modulePath)
	if err != nil {
		return nil, err
	}
	index, err := loadTemplate(fsys, indexTemplateName, indexPath)
	if err != nil {
		return nil, err
	}
	return &Renderer{module: module, index: index}, nil
}

func loadTemplate(fsys afero.Fs, name, overridePath string) (*template.Template, error) {
	var (
		content []byte
		err     error
	)
	if overridePath == "" {
		content, err = templateFS.ReadFile("templates/" + name)
	} else {
		if fsys == nil {
			fsys = afero.NewOsFs()
		}
		content, err = afero.ReadFile(fsys, overridePath)
		if err != nil {
			err = &FileSystemError{Op: "read template", Path: overridePath, Err: err}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}

// RenderModule renders the source of one icon module
func (r *Renderer) RenderModule(data ModuleData) (string, error) {
	var sb strings.Builder
	if err := r.module.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render module %s: %w", data.Name, err)
	}
	return sb.String(), nil
}

// RenderIndex renders the index re-exporting every entry in order
func (r *Renderer) RenderIndex(entries []IndexEntry) (string, error) {
	var sb strings.Builder
	if err := r.index.Execute(&sb, IndexData{Entries: entries}); err != nil {
		return "", fmt.Errorf("failed to render index: %w", err)
	}
	return sb.String(), nil
}
