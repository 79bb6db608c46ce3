package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"contract_tracker/internal/domain/document"
	"contract_tracker/internal/usecase/interfaces"
)

const minPageHeight = 800

const pageTemplate = `<!DOCTYPE html>
<html>
  <head>
    <title>{{.Doc.Title}}</title>
    <style>
      body { font-family: Arial, sans-serif; padding: 40px; max-width: 800px; margin: 0 auto; }
      .contract-header { text-align: center; border-bottom: 2px solid #0e4b66; padding-bottom: 20px; margin-bottom: 30px; }
      .contract-header h1 { color: #0e4b66; margin: 0; }
      .contract-header h2 { color: #718096; margin: 10px 0 0 0; font-size: 1.2rem; font-weight: normal; }
      .contract-content { line-height: 1.8; }
      .contract-field { margin-bottom: 20px; }
      .contract-field strong { display: block; margin-bottom: 5px; color: #0e4b66; }
      .contract-signature { margin-top: 40px; padding-top: 30px; border-top: 2px solid #e2e8f0; }
      .contract-signature img { max-width: 300px; display: block; margin: 20px 0; border: 1px solid #e2e8f0; padding: 10px; }
      .signature-date { margin-top: 10px; font-style: italic; color: #718096; }
      .placed { position: absolute; }
      .placed img { max-width: 200px; display: block; margin-top: 10px; border: 1px solid #e2e8f0; padding: 5px; }
      @media print { body { padding: 20px; } }
    </style>
  </head>
  <body>
    <div class="contract-header">
      <h1>{{.Doc.Heading}}</h1>
      {{- if .Doc.Subheading}}
      <h2>{{.Doc.Subheading}}</h2>
      {{- end}}
    </div>
    {{- if .Positioned}}
    <div class="contract-content" style="position: relative; min-height: {{.Height}}px;">
      {{- range .Nodes}}
      <div class="placed" style="left: {{.Left}}px; top: {{.Top}}px;">
        <strong>{{.Label}}:</strong>
        {{- if .IsImage}}
        <img src="{{.Src}}" alt="Signature" />
        {{- else if .IsCheck}} {{if .Checked}}✓{{else}}✗{{end}}
        {{- else}} {{.Text}}
        {{- end}}
      </div>
      {{- end}}
    </div>
    {{- else}}
    <div class="contract-content">
      {{- range .Nodes}}
      {{- if .IsImage}}
      <div class="contract-signature">
        <strong>{{.Label}}:</strong>
        <img src="{{.Src}}" alt="Signature" />
        {{- if .Caption}}
        <div class="signature-date">{{.Caption}}</div>
        {{- end}}
      </div>
      {{- else if .IsParagraph}}
      <div class="contract-field"><strong>{{.Label}}:</strong><p>{{.Text}}</p></div>
      {{- else if .IsCheck}}
      <div class="contract-field"><strong>{{.Label}}:</strong> {{if .Checked}}✓{{else}}✗{{end}}</div>
      {{- else}}
      <div class="contract-field"><strong>{{.Label}}:</strong> {{.Text}}</div>
      {{- end}}
      {{- end}}
    </div>
    {{- end}}
    {{- if .AutoPrint}}
    <script>
      window.addEventListener("load", function () {
        setTimeout(function () { window.focus(); window.print(); }, {{.DelayMS}});
      });
    </script>
    {{- end}}
  </body>
</html>
`

// HTMLRenderer turns a document into a standalone print page. When opened in
// a browser the page calls the print dialog after the configured delay so the
// layout can settle first.

type HTMLRenderer struct {
	tmpl      *template.Template
	delay     time.Duration
	autoPrint bool
}

var _ interfaces.IDocumentRenderer = (*HTMLRenderer)(nil)

func NewHTMLRenderer(delay time.Duration) *HTMLRenderer {
	return &HTMLRenderer{
		tmpl:      template.Must(template.New("page").Parse(pageTemplate)),
		delay:     delay,
		autoPrint: true,
	}
}

// WithoutAutoPrint returns a renderer that leaves the print script out, for
// saving pages to disk.
func (r *HTMLRenderer) WithoutAutoPrint() *HTMLRenderer {
	out := *r
	out.autoPrint = false
	return &out
}

func (r *HTMLRenderer) Format() string { return "html" }

func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

type htmlNode struct {
	document.Node
	Src  any
	Left float64
	Top  float64
}

func (n htmlNode) IsImage() bool     { return n.Kind == document.NodeImage }
func (n htmlNode) IsCheck() bool     { return n.Kind == document.NodeCheck }
func (n htmlNode) IsParagraph() bool { return n.Kind == document.NodeParagraph }

type htmlPage struct {
	Doc        document.Document
	Positioned bool
	Height     float64
	Nodes      []htmlNode
	AutoPrint  bool
	DelayMS    int64
}

func (r *HTMLRenderer) Render(w io.Writer, doc document.Document) error {
	page := htmlPage{
		Doc:        doc,
		Positioned: doc.Layout == document.LayoutPositioned,
		Height:     doc.Height() + 100,
		AutoPrint:  r.autoPrint,
		DelayMS:    r.delay.Milliseconds(),
	}
	if page.Height < minPageHeight {
		page.Height = minPageHeight
	}
	for _, n := range doc.Nodes {
		hn := htmlNode{Node: n, Src: imageSource(n.Image)}
		if n.Position != nil {
			hn.Left, hn.Top = n.Position.X, n.Position.Y
		}
		page.Nodes = append(page.Nodes, hn)
	}
	if err := r.tmpl.Execute(w, page); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

// imageSource lets embedded image data URLs through; anything else goes to
// the template as a plain string and is sanitized there.
func imageSource(src string) any {
	if strings.HasPrefix(src, "data:image/") && !strings.ContainsAny(src, "\"'<> ") {
		return template.URL(src)
	}
	return src
}
