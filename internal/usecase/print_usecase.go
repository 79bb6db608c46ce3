package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"contract_tracker/internal/domain/document"
	"contract_tracker/internal/usecase/interfaces"
)

var ErrUnsupportedFormat = errors.New("unsupported print format")

// Rendered is a finished print page.
type Rendered struct {
	ContentType string
	Body        []byte
}

// IPrintUseCase renders contracts, stored or unsaved, in one of the
// registered formats. An empty format selects the first renderer.

type IPrintUseCase interface {
	Formats() []string
	RenderContract(ctx context.Context, id int, format string) (Rendered, error)
	RenderPreview(ctx context.Context, sub ContractSubmission, format string) (Rendered, error)
}

type PrintUseCase struct {
	contracts IContractStore
	form      IContractFormUseCase
	renderers []interfaces.IDocumentRenderer
}

var _ IPrintUseCase = (*PrintUseCase)(nil)

func NewPrintUseCase(contracts IContractStore, form IContractFormUseCase, renderers ...interfaces.IDocumentRenderer) *PrintUseCase {
	return &PrintUseCase{contracts: contracts, form: form, renderers: renderers}
}

func (u *PrintUseCase) Formats() []string {
	out := make([]string, len(u.renderers))
	for i, r := range u.renderers {
		out[i] = r.Format()
	}
	return out
}

func (u *PrintUseCase) RenderContract(ctx context.Context, id int, format string) (Rendered, error) {
	r, err := u.renderer(format)
	if err != nil {
		return Rendered{}, err
	}
	c, ok := u.contracts.Get(id)
	if !ok {
		return Rendered{}, ErrContractNotFound
	}
	return render(r, BuildContractDocument(c))
}

func (u *PrintUseCase) RenderPreview(ctx context.Context, sub ContractSubmission, format string) (Rendered, error) {
	r, err := u.renderer(format)
	if err != nil {
		return Rendered{}, err
	}
	doc, err := u.form.Preview(ctx, sub)
	if err != nil {
		return Rendered{}, err
	}
	return render(r, doc)
}

func (u *PrintUseCase) renderer(format string) (interfaces.IDocumentRenderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" && len(u.renderers) > 0 {
		return u.renderers[0], nil
	}
	for _, r := range u.renderers {
		if r.Format() == format {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func render(r interfaces.IDocumentRenderer, doc document.Document) (Rendered, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, doc); err != nil {
		return Rendered{}, fmt.Errorf("render %s: %w", r.Format(), err)
	}
	return Rendered{ContentType: r.ContentType(), Body: buf.Bytes()}, nil
}
