package interfaces

import (
	"contract_tracker/internal/domain/document"
	"io"
)

// IDocumentRenderer turns a print document into one output format.
type IDocumentRenderer interface {
	Format() string
	ContentType() string
	Render(w io.Writer, doc document.Document) error
}
