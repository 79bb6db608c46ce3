package request

import (
	"errors"
	"fmt"
	"strings"

	"contract_tracker/internal/domain/entities"
	"contract_tracker/internal/usecase"
)

var (
	ErrInvalidSignatureImage = errors.New("signature must be an image data url")
)

const signatureImagePrefix = "data:image/"

// ContractRequest is the contract creation form. With blueprint_id set the
// blueprint fields are read from values and signatures, keyed by field id.
type ContractRequest struct {
	BlueprintID   string                         `json:"blueprint_id"`
	Name          string                         `json:"name"`
	Type          string                         `json:"type"`
	ClientName    string                         `json:"client_name"`
	ContractValue string                         `json:"contract_value"`
	Description   string                         `json:"description"`
	Signature     string                         `json:"signature"`
	Values        map[string]entities.FieldValue `json:"values"`
	Signatures    map[string]string              `json:"signatures"`
}

// Validate checks that every non-empty signature is an embedded image.
func (r ContractRequest) Validate() error {
	if err := checkSignature(r.Signature); err != nil {
		return err
	}
	for id, sig := range r.Signatures {
		if err := checkSignature(sig); err != nil {
			return fmt.Errorf("%w (field %s)", err, id)
		}
	}
	return nil
}

func (r ContractRequest) ToSubmission() usecase.ContractSubmission {
	return usecase.ContractSubmission{
		BlueprintID:   strings.TrimSpace(r.BlueprintID),
		Name:          r.Name,
		Type:          r.Type,
		ClientName:    r.ClientName,
		ContractValue: r.ContractValue,
		Description:   r.Description,
		Signature:     r.Signature,
		Values:        r.Values,
		Signatures:    r.Signatures,
	}
}

func checkSignature(sig string) error {
	if sig == "" {
		return nil
	}
	if !strings.HasPrefix(sig, signatureImagePrefix) || !strings.Contains(sig, ";base64,") {
		return ErrInvalidSignatureImage
	}
	return nil
}
