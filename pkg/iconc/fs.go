package iconc

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// SVGExt is the case-sensitive extension of icon sources
const SVGExt = ".svg"

// EnsureOutputDir creates dir and its parents if they do not exist
func EnsureOutputDir(fsys afero.Fs, dir string) error {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return &FileSystemError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// ListSVGFiles returns the names of the regular .svg files directly inside
// dir, in directory listing order (afero sorts by name). Subdirectories and
// other extensions are ignored, as is a bare ".svg" dotfile.
func ListSVGFiles(fsys afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, &FileSystemError{Op: "list", Path: dir, Err: err}
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || name == SVGExt || filepath.Ext(name) != SVGExt {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// ReadSource reads one icon from dir
func ReadSource(fsys afero.Fs, dir, name string) (IconSource, error) {
	path := filepath.Join(dir, name)
	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		return IconSource{}, &FileSystemError{Op: "read", Path: path, Err: err}
	}
	return IconSource{Filename: name, Content: content}, nil
}

// ReadSources lists and eagerly reads every icon in dir
func ReadSources(fsys afero.Fs, dir string) ([]IconSource, error) {
	names, err := ListSVGFiles(fsys, dir)
	if err != nil {
		return nil, err
	}

	sources := make([]IconSource, 0, len(names))
	for _, name := range names {
		src, err := ReadSource(fsys, dir, name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// WriteFile writes f into dir, replacing any existing file
func WriteFile(fsys afero.Fs, dir string, f GeneratedFile) error {
	path := filepath.Join(dir, f.Name)
	if err := afero.WriteFile(fsys, path, []byte(f.Text), 0o644); err != nil {
		return &FileSystemError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// WriteModule writes one module's text to dir/baseName.ext
func WriteModule(fsys afero.Fs, dir, baseName, ext, text string) error {
	return WriteFile(fsys, dir, GeneratedFile{Name: baseName + "." + ext, Text: text})
}

// WriteResult creates dir if needed and writes every file of r into it
func WriteResult(fsys afero.Fs, dir string, r *Result) error {
	if err := EnsureOutputDir(fsys, dir); err != nil {
		return err
	}
	for _, f := range r.Files() {
		if err := WriteFile(fsys, dir, f); err != nil {
			return err
		}
	}
	return nil
}
