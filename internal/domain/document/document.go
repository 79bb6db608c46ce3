// Package document holds the format-neutral model of a printable contract.
// Builders in the usecase layer fill it from contract data; renderers turn it
// into HTML or terminal output without looking at contracts themselves.
package document

import "contract_tracker/internal/domain/entities"

type Layout string

const (
	// LayoutFlow stacks nodes top to bottom.
	LayoutFlow Layout = "flow"
	// LayoutPositioned places every node at its own Position, reproducing the
	// blueprint editor layout.
	LayoutPositioned Layout = "positioned"
)

type NodeKind string

const (
	NodeText      NodeKind = "text"
	NodeParagraph NodeKind = "paragraph"
	NodeImage     NodeKind = "image"
	NodeCheck     NodeKind = "check"
)

// Node is one labelled item on the page.
type Node struct {
	Kind     NodeKind
	Label    string
	Text     string
	Image    string
	Checked  bool
	Caption  string
	Position *entities.Position
}

type Document struct {
	Title      string
	Heading    string
	Subheading string
	Layout     Layout
	Nodes      []Node
}

func Text(label, text string) Node {
	return Node{Kind: NodeText, Label: label, Text: text}
}

func Paragraph(label, text string) Node {
	return Node{Kind: NodeParagraph, Label: label, Text: text}
}

func Image(label, src, caption string) Node {
	return Node{Kind: NodeImage, Label: label, Image: src, Caption: caption}
}

func Check(label string, checked bool) Node {
	return Node{Kind: NodeCheck, Label: label, Checked: checked}
}

// At returns a copy of n placed at p.
func (n Node) At(p entities.Position) Node {
	n.Position = &p
	return n
}

// Height returns the lowest Y used by a positioned node, for sizing the page.
func (d Document) Height() float64 {
	var max float64
	for _, n := range d.Nodes {
		if n.Position != nil && n.Position.Y > max {
			max = n.Position.Y
		}
	}
	return max
}
