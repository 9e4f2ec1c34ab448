// Package render turns generated content ideas into HTML.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/ytgap/internal/trend"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

var pageTmpl = template.Must(template.New("ideas").Parse(pageTemplate))

// Outline converts a markdown outline to an HTML fragment. Raw HTML in the
// outline is not passed through.
func Outline(outline string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(outline), &buf); err != nil {
		return "", fmt.Errorf("converting outline: %w", err)
	}
	return buf.String(), nil
}

// Page renders a standalone HTML document with the titles and outline for term.
func Page(term string, ideas *trend.ContentIdeas) (string, error) {
	outline, err := Outline(ideas.Outline)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = pageTmpl.Execute(&buf, struct {
		Term    string
		Titles  []string
		Outline template.HTML
	}{
		Term:    term,
		Titles:  ideas.Titles,
		Outline: template.HTML(outline),
	})
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return buf.String(), nil
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Video ideas: {{.Term}}</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 760px; margin: 2rem auto; padding: 0 1rem; color: #212529; }
    h1 { font-size: 1.5rem; }
    ol.titles li { margin: 0.4rem 0; }
    .outline { border-top: 1px solid #dee2e6; margin-top: 1.5rem; padding-top: 1rem; }
  </style>
</head>
<body>
  <h1>Video ideas for "{{.Term}}"</h1>
  <h2>Suggested titles</h2>
  <ol class="titles">
  {{- range .Titles}}
    <li>{{.}}</li>
  {{- end}}
  </ol>
  <section class="outline">
    <h2>Sample outline</h2>
    {{.Outline}}
  </section>
</body>
</html>
`
