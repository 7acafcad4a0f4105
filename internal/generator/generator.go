// Package generator renders and writes the header/source pair for a new
// yli::ontology class.
package generator

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"shireesh.com/ontogen/internal/naming"
)

const (
	headerTemplate = "class.hpp.tmpl"
	sourceTemplate = "class.cpp.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed templates/license.txt
var licenseText string

var templates = template.Must(
	template.New("ontogen").Option("missingkey=error").ParseFS(templateFS, "templates/*.tmpl"),
)

// License returns the license block every generated file starts with.
func License() string {
	return strings.TrimRight(licenseText, "\n")
}

type templateData struct {
	naming.NameForms
	License string
}

// RenderHeader writes the class header to w.
func RenderHeader(w io.Writer, names naming.NameForms) error {
	return render(w, headerTemplate, names)
}

// RenderSource writes the class source file to w.
func RenderSource(w io.Writer, names naming.NameForms) error {
	return render(w, sourceTemplate, names)
}

func render(w io.Writer, name string, names naming.NameForms) error {
	return templates.ExecuteTemplate(w, name, templateData{NameForms: names, License: License()})
}

// Generate writes <snake>.hpp and then <snake>.cpp into outputDir, replacing
// any existing files. It returns the paths written so far, so a header may be
// reported (and left on disk) even when writing the source fails.
func Generate(outputDir string, spec naming.ClassSpec) ([]string, error) {
	names := naming.Derive(spec)

	outputs := []struct {
		file   string
		render func(io.Writer, naming.NameForms) error
	}{
		{names.HeaderFile, RenderHeader},
		{names.SourceFile, RenderSource},
	}

	var written []string
	for _, out := range outputs {
		target := filepath.Join(outputDir, out.file)
		err := writeFile(target, func(w io.Writer) error {
			return out.render(w, names)
		})
		if err != nil {
			return written, err
		}
		written = append(written, target)
	}
	return written, nil
}

// writeFile truncates or creates path and renders into it. The file is
// closed on every return path; a failed close is reported.
func writeFile(path string, fill func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := fill(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
