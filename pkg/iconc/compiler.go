package iconc

import (
	"errors"
	"fmt"
	"strings"
)

// IconSource is one SVG file read from the input directory
type IconSource struct {
	Filename string
	Content  []byte
}

// GeneratedFile is a file to be written into the output directory
type GeneratedFile struct {
	Name string // path relative to the output directory
	Text string
}

// GeneratedModule is the module generated for one icon
type GeneratedModule struct {
	GeneratedFile
	Source     string // source filename, e.g. "arrow-left.svg"
	BaseName   string // source filename without .svg
	Identifier string // exported name, e.g. "ArrowLeft"
}

// Result holds everything one run writes
type Result struct {
	Modules []GeneratedModule
	Index   GeneratedFile
}

// Files returns the modules in enumeration order followed by the index
func (r *Result) Files() []GeneratedFile {
	files := make([]GeneratedFile, 0, len(r.Modules)+1)
	for _, m := range r.Modules {
		files = append(files, m.GeneratedFile)
	}
	return append(files, r.Index)
}

// Options controls how icons are compiled
type Options struct {
	Upcase    bool      // upper-case the first letter of identifiers
	Extension string    // module extension without dot
	IndexName string    // index filename
	Renderer  *Renderer // nil uses the embedded templates
}

// DefaultOptions returns the options matching the default configuration
func DefaultOptions() Options {
	return Options{
		Upcase:    true,
		Extension: "js",
		IndexName: "index.js",
	}
}

// Compiler turns icon sources into modules one at a time and accumulates
// the index entries. It performs no I/O.
type Compiler struct {
	opts     Options
	renderer *Renderer
	owners   map[string]string // identifier -> source filename
	entries  []IndexEntry
}

// NewCompiler creates a Compiler
func NewCompiler(opts Options) (*Compiler, error) {
	renderer := opts.Renderer
	if renderer == nil {
		var err error
		renderer, err = NewRenderer()
		if err != nil {
			return nil, err
		}
	}
	if opts.Extension == "" {
		opts.Extension = "js"
	}
	opts.Extension = strings.TrimPrefix(opts.Extension, ".")
	if opts.IndexName == "" {
		opts.IndexName = "index." + opts.Extension
	}

	return &Compiler{
		opts:     opts,
		renderer: renderer,
		owners:   make(map[string]string),
	}, nil
}

// Add compiles one icon and records it for the index.
// Errors are *MalformedSVGError, *InvalidIdentifierError or
// *DuplicateIdentifierError, all naming src.Filename.
func (c *Compiler) Add(src IconSource) (GeneratedModule, error) {
	icon, err := ExtractSVG(src.Content)
	if err != nil {
		var malformed *MalformedSVGError
		if errors.As(err, &malformed) {
			malformed.File = src.Filename
		}
		return GeneratedModule{}, err
	}

	identifier, err := DeriveIdentifier(src.Filename, c.opts.Upcase)
	if err != nil {
		return GeneratedModule{}, err
	}
	if other, ok := c.owners[identifier]; ok {
		return GeneratedModule{}, &DuplicateIdentifierError{File: src.Filename, Other: other, Identifier: identifier}
	}

	baseName := BaseName(src.Filename)
	moduleName := baseName + "." + c.opts.Extension
	if moduleName == c.opts.IndexName {
		return GeneratedModule{}, fmt.Errorf("%s: %w (%s)", src.Filename, ErrIndexCollision, moduleName)
	}

	text, err := c.renderer.RenderModule(ModuleData{
		Name:     identifier,
		BaseName: baseName,
		ViewBox:  icon.ViewBox,
		Content:  icon.Content,
	})
	if err != nil {
		return GeneratedModule{}, fmt.Errorf("%s: %w", src.Filename, err)
	}

	c.owners[identifier] = src.Filename
	c.entries = append(c.entries, IndexEntry{Name: identifier, BaseName: baseName})

	return GeneratedModule{
		GeneratedFile: GeneratedFile{Name: moduleName, Text: text},
		Source:        src.Filename,
		BaseName:      baseName,
		Identifier:    identifier,
	}, nil
}

// Index renders the index for every icon added so far
func (c *Compiler) Index() (GeneratedFile, error) {
	text, err := c.renderer.RenderIndex(c.entries)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Name: c.opts.IndexName, Text: text}, nil
}

// Compile runs the whole pipeline over sources without touching any
// filesystem. The first failing icon aborts compilation.
func Compile(sources []IconSource, opts Options) (*Result, error) {
	c, err := NewCompiler(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Modules: make([]GeneratedModule, 0, len(sources))}
	for _, src := range sources {
		module, err := c.Add(src)
		if err != nil {
			return nil, err
		}
		result.Modules = append(result.Modules, module)
	}

	result.Index, err = c.Index()
	if err != nil {
		return nil, err
	}
	return result, nil
}
