package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"contract_tracker/internal/domain/document"
	"contract_tracker/internal/usecase/interfaces"

	"github.com/charmbracelet/lipgloss"
)

var (
	primary = lipgloss.Color("#0e4b66")
	muted   = lipgloss.Color("#718096")
	border  = lipgloss.Color("#e2e8f0")
)

// TerminalStyles are the lipgloss styles used for terminal output.
type TerminalStyles struct {
	Heading    lipgloss.Style
	Subheading lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Caption    lipgloss.Style
	Box        lipgloss.Style
}

func DefaultTerminalStyles() TerminalStyles {
	return TerminalStyles{
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(primary),
		Subheading: lipgloss.NewStyle().Foreground(muted),
		Label:      lipgloss.NewStyle().Bold(true).Foreground(primary),
		Value:      lipgloss.NewStyle(),
		Caption:    lipgloss.NewStyle().Italic(true).Foreground(muted),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
	}
}

// PlainTerminalStyles renders without colors or borders, for pipes and tests.
func PlainTerminalStyles() TerminalStyles {
	plain := lipgloss.NewStyle()
	return TerminalStyles{Heading: plain, Subheading: plain, Label: plain, Value: plain, Caption: plain, Box: plain}
}

// TerminalRenderer prints a document as a boxed list for the CLI. Positioned
// documents are read top to bottom, left to right. Images cannot be shown, so
// they print as a short marker.

type TerminalRenderer struct {
	styles TerminalStyles
}

var _ interfaces.IDocumentRenderer = (*TerminalRenderer)(nil)

func NewTerminalRenderer(styles TerminalStyles) *TerminalRenderer {
	return &TerminalRenderer{styles: styles}
}

func (r *TerminalRenderer) Format() string { return "text" }

func (r *TerminalRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *TerminalRenderer) Render(w io.Writer, doc document.Document) error {
	s := r.styles
	var lines []string

	lines = append(lines, s.Heading.Render(doc.Heading))
	if doc.Subheading != "" {
		lines = append(lines, s.Subheading.Render(doc.Subheading))
	}
	lines = append(lines, "")

	for _, n := range readingOrder(doc) {
		label := s.Label.Render(n.Label + ":")
		switch n.Kind {
		case document.NodeImage:
			lines = append(lines, label+" "+s.Value.Render(imageMarker(n.Image)))
			if n.Caption != "" {
				lines = append(lines, s.Caption.Render(n.Caption))
			}
		case document.NodeCheck:
			mark := "✗"
			if n.Checked {
				mark = "✓"
			}
			lines = append(lines, label+" "+mark)
		case document.NodeParagraph:
			lines = append(lines, label, s.Value.Render(n.Text))
		default:
			lines = append(lines, label+" "+s.Value.Render(n.Text))
		}
	}

	if _, err := fmt.Fprintln(w, s.Box.Render(strings.Join(lines, "\n"))); err != nil {
		return fmt.Errorf("write terminal output: %w", err)
	}
	return nil
}

func readingOrder(doc document.Document) []document.Node {
	nodes := append([]document.Node(nil), doc.Nodes...)
	if doc.Layout != document.LayoutPositioned {
		return nodes
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i].Position, nodes[j].Position
		if a == nil || b == nil {
			return b != nil
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return nodes
}

func imageMarker(src string) string {
	if src == "" {
		return "[no image]"
	}
	kind := "image"
	if strings.HasPrefix(src, "data:") {
		if semi := strings.IndexAny(src, ";,"); semi > len("data:") {
			kind = src[len("data:"):semi]
		}
	}
	return fmt.Sprintf("[%s, %d bytes]", kind, len(src))
}
