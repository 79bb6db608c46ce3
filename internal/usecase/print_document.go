package usecase

import (
	"strconv"

	"contract_tracker/internal/domain/document"
	"contract_tracker/internal/domain/entities"
)

const (
	printHeading   = "CONTRACT AGREEMENT"
	notAvailable   = "N/A"
	signatureLabel = "Signature"
)

// BuildContractDocument lays out a stored contract for printing. Contracts
// generated from a blueprint keep the editor positions of their fields; the
// rest print as a plain list.
func BuildContractDocument(c entities.Contract) document.Document {
	doc := document.Document{
		Title:   "Contract - " + c.Name,
		Heading: printHeading,
	}
	if c.FromBlueprint() {
		doc.Subheading = c.Type
		doc.Layout = document.LayoutPositioned
		doc.Nodes = positionedNodes(c.BlueprintFields)
		return doc
	}

	doc.Layout = document.LayoutFlow
	doc.Nodes = []document.Node{
		document.Text("Contract ID", strconv.Itoa(c.ID)),
		document.Text("Contract Name", c.Name),
		document.Text("Contract Type", c.Type),
		document.Text("Status", string(c.Status)),
	}
	doc.Nodes = append(doc.Nodes, optionalNodes(c.ClientName, c.ContractValue, c.Description)...)
	if c.Signature != nil && *c.Signature != "" {
		doc.Nodes = append(doc.Nodes, document.Image(signatureLabel, *c.Signature, "Date: "+c.CreatedAt))
	}
	return doc
}

// BuildPreviewDocument lays out an unsaved form. bp is the selected
// blueprint, or nil for the standard form; today stamps the signature.
func BuildPreviewDocument(sub ContractSubmission, bp *entities.Blueprint, today string) document.Document {
	doc := document.Document{Heading: printHeading}
	if bp != nil {
		doc.Title = "Contract - " + bp.Name
		doc.Subheading = bp.Name
		doc.Layout = document.LayoutPositioned
		doc.Nodes = positionedNodes(FillBlueprintFields(*bp, sub.blueprintInput()))
		return doc
	}

	doc.Title = "Contract - " + sub.Name
	doc.Layout = document.LayoutFlow
	doc.Nodes = []document.Node{
		document.Text("Contract Name", orNotAvailable(sub.Name)),
		document.Text("Contract Type", orNotAvailable(sub.Type)),
	}
	doc.Nodes = append(doc.Nodes, optionalNodes(sub.ClientName, sub.ContractValue, sub.Description)...)
	if sub.Signature != "" {
		doc.Nodes = append(doc.Nodes, document.Image(signatureLabel, sub.Signature, "Date: "+today))
	}
	return doc
}

func optionalNodes(client, value, description string) []document.Node {
	var nodes []document.Node
	if client != "" {
		nodes = append(nodes, document.Text("Client Name", client))
	}
	if value != "" {
		nodes = append(nodes, document.Text("Contract Value", value))
	}
	if description != "" {
		nodes = append(nodes, document.Paragraph("Description", description))
	}
	return nodes
}

// positionedNodes places one node per field. Signature fields without an
// image are left off the page.
func positionedNodes(fields []entities.FieldWithValue) []document.Node {
	nodes := make([]document.Node, 0, len(fields))
	for _, f := range fields {
		var n document.Node
		switch f.Type {
		case entities.FieldTypeSignature:
			if f.Value.String() == "" {
				continue
			}
			n = document.Image(f.Label, f.Value.String(), "")
		case entities.FieldTypeCheckbox:
			n = document.Check(f.Label, f.Value.Bool())
		default:
			n = document.Text(f.Label, f.Value.String())
		}
		nodes = append(nodes, n.At(f.Position))
	}
	return nodes
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
