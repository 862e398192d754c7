package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/kr/text"
)

const tmplEntryText = `{{paint "url" .URL}}
{{range .Attrs}}{{label .Name}}: {{paint .Name (wrap .Text)}}
{{end}}
`

const (
	wrapWidth  = 70
	wrapIndent = "  "
)

type printableEntry struct {
	URL   string
	Attrs []attr
}

// printer renders a library in one of the output modes.
type printer struct {
	out     io.Writer
	cfg     *Config
	painter painter
}

func (p *printer) print(lib Library, mode OutputMode) error {
	switch mode {
	case ModeJSON:
		return p.printJSON(lib)
	case ModeFull:
		return p.printFull(lib)
	case ModeOnlyURL:
		return p.printURLs(lib)
	}
	return fmt.Errorf("unknown output mode %v", mode)
}

func (p *printer) printJSON(lib Library) error {
	enc := json.NewEncoder(p.out)
	enc.SetEscapeHTML(false)
	return enc.Encode(lib)
}

func (p *printer) printURLs(lib Library) error {
	for _, url := range lib.URLs() {
		if _, err := fmt.Fprintln(p.out, p.painter.paint(p.cfg.Color(fieldURL), url)); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) printFull(lib Library) error {
	tmpl, err := template.New("entry").Funcs(template.FuncMap{
		"paint": func(field, s string) string { return p.painter.paint(p.cfg.Color(field), s) },
		"label": label,
		"wrap":  wrap,
	}).Parse(tmplEntryText)
	if err != nil {
		return err
	}

	for _, url := range lib.URLs() {
		if err := tmpl.Execute(p.out, printableEntry{url, lib[url].attrs()}); err != nil {
			return err
		}
	}
	return nil
}

func printTags(w io.Writer, tcs []tagCount) error {
	for _, tc := range tcs {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", tc.count, tc.tag); err != nil {
			return err
		}
	}
	return nil
}

// label capitalizes an attribute name.
func label(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func wrap(s string) string {
	if len(s) <= wrapWidth {
		return s
	}
	return strings.TrimPrefix(text.Indent(text.Wrap(s, wrapWidth), wrapIndent), wrapIndent)
}
