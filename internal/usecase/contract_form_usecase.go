package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contract_tracker/internal/domain/document"
	"contract_tracker/internal/domain/entities"

	"go.uber.org/zap"
)

var (
	ErrRequiredFieldMissing = errors.New("required field missing")
	ErrContractNameRequired = errors.New("contract name is required")
	ErrInvalidContractType  = errors.New("invalid contract type")
	ErrSignatureRequired    = errors.New("signature is required")
)

// ContractSubmission is the creation form as submitted. With a BlueprintID
// the blueprint fields are filled from Values and Signatures (keyed by field
// id) and the standard attributes other than Name are ignored.
type ContractSubmission struct {
	BlueprintID   string
	Name          string
	Type          string
	ClientName    string
	ContractValue string
	Description   string
	Signature     string
	Values        map[string]entities.FieldValue
	Signatures    map[string]string
}

func (s ContractSubmission) blueprintInput() BlueprintInput {
	return BlueprintInput{Name: s.Name, Values: s.Values, Signatures: s.Signatures}
}

type BlueprintOption struct {
	ID   string
	Name string
}

// ContractForm is everything needed to render the creation form.
type ContractForm struct {
	Blueprints    []BlueprintOption
	Selected      *entities.Blueprint
	InitialValues map[string]entities.FieldValue
	ContractTypes []string
	DefaultType   string
}

// IContractFormUseCase backs the contract creation page.

type IContractFormUseCase interface {
	Form(blueprintID string) (ContractForm, error)
	Submit(ctx context.Context, sub ContractSubmission) (entities.Contract, error)
	Preview(ctx context.Context, sub ContractSubmission) (document.Document, error)
}

type ContractFormUseCase struct {
	blueprints IBlueprintStore
	contracts  IContractStore
	opts       storeOptions
	log        *zap.Logger
}

var _ IContractFormUseCase = (*ContractFormUseCase)(nil)

func NewContractFormUseCase(blueprints IBlueprintStore, contracts IContractStore, logger *zap.Logger, opts ...StoreOption) *ContractFormUseCase {
	return &ContractFormUseCase{
		blueprints: blueprints,
		contracts:  contracts,
		opts:       newStoreOptions(opts),
		log:        namedLogger(logger, "contract.form"),
	}
}

func (u *ContractFormUseCase) Form(blueprintID string) (ContractForm, error) {
	form := ContractForm{
		ContractTypes: append([]string(nil), entities.ContractTypes...),
		DefaultType:   entities.DefaultContractType,
	}
	for _, bp := range u.blueprints.List() {
		form.Blueprints = append(form.Blueprints, BlueprintOption{ID: bp.ID, Name: bp.Name})
	}

	blueprintID = strings.TrimSpace(blueprintID)
	if blueprintID == "" {
		return form, nil
	}
	bp, ok := u.blueprints.Get(blueprintID)
	if !ok {
		return ContractForm{}, ErrBlueprintNotFound
	}
	form.Selected = &bp
	form.InitialValues = InitialFieldValues(bp)
	return form, nil
}

func (u *ContractFormUseCase) Submit(ctx context.Context, sub ContractSubmission) (entities.Contract, error) {
	draft, err := u.draft(sub)
	if err != nil {
		u.log.Info("submit rejected", zap.String("blueprint_id", sub.BlueprintID), zap.Error(err))
		return entities.Contract{}, err
	}
	return u.contracts.Add(ctx, draft)
}

func (u *ContractFormUseCase) Preview(_ context.Context, sub ContractSubmission) (document.Document, error) {
	if strings.TrimSpace(sub.BlueprintID) == "" {
		return BuildPreviewDocument(sub, nil, u.opts.today()), nil
	}
	bp, ok := u.blueprints.Get(strings.TrimSpace(sub.BlueprintID))
	if !ok {
		return document.Document{}, ErrBlueprintNotFound
	}
	return BuildPreviewDocument(sub, &bp, u.opts.today()), nil
}

func (u *ContractFormUseCase) draft(sub ContractSubmission) (entities.Contract, error) {
	if id := strings.TrimSpace(sub.BlueprintID); id != "" {
		bp, ok := u.blueprints.Get(id)
		if !ok {
			return entities.Contract{}, ErrBlueprintNotFound
		}
		fields := FillBlueprintFields(bp, sub.blueprintInput())
		if missing := MissingRequiredFields(fields); len(missing) > 0 {
			labels := make([]string, len(missing))
			for i, f := range missing {
				labels[i] = f.Label
			}
			return entities.Contract{}, fmt.Errorf("%w: %s", ErrRequiredFieldMissing, strings.Join(labels, ", "))
		}
		return AssembleFromBlueprint(bp, sub.blueprintInput()), nil
	}

	name := strings.TrimSpace(sub.Name)
	if name == "" {
		return entities.Contract{}, ErrContractNameRequired
	}
	typ := strings.TrimSpace(sub.Type)
	if typ == "" {
		typ = entities.DefaultContractType
	}
	if !entities.IsContractType(typ) {
		return entities.Contract{}, fmt.Errorf("%w: %q", ErrInvalidContractType, typ)
	}
	if strings.TrimSpace(sub.Signature) == "" {
		return entities.Contract{}, ErrSignatureRequired
	}
	sig := sub.Signature
	return entities.Contract{
		Name:          name,
		Type:          typ,
		ClientName:    sub.ClientName,
		ContractValue: sub.ContractValue,
		Description:   sub.Description,
		Signature:     &sig,
	}, nil
}
