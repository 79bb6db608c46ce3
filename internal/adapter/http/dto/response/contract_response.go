package response

import (
	"contract_tracker/internal/domain/entities"
	"contract_tracker/internal/usecase"
)

type BlueprintFieldResponse struct {
	FieldResponse
	Value entities.FieldValue `json:"value"`
}

// ContractResponse carries the stored record plus the actions the dashboard
// offers for its current status.
type ContractResponse struct {
	ID              int                      `json:"id"`
	Name            string                   `json:"name"`
	Type            string                   `json:"type"`
	Status          string                   `json:"status"`
	CreatedAt       string                   `json:"created_at"`
	ClientName      string                   `json:"client_name"`
	ContractValue   string                   `json:"contract_value"`
	Description     string                   `json:"description"`
	Signature       *string                  `json:"signature"`
	BlueprintID     string                   `json:"blueprint_id,omitempty"`
	BlueprintFields []BlueprintFieldResponse `json:"blueprint_fields,omitempty"`
	RevokedAt       string                   `json:"revoked_at,omitempty"`
	NextStage       string                   `json:"next_stage,omitempty"`
	CanAdvance      bool                     `json:"can_advance"`
	CanRevoke       bool                     `json:"can_revoke"`
}

type ContractListResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	Total     int                `json:"total"`
}

// DashboardResponse is the filtered contract table with per-status counts
// taken over the whole collection.
type DashboardResponse struct {
	Filter    string             `json:"filter"`
	Filters   []string           `json:"filters"`
	Stages    []string           `json:"stages"`
	Counts    map[string]int     `json:"counts"`
	Total     int                `json:"total"`
	Shown     int                `json:"shown"`
	Contracts []ContractResponse `json:"contracts"`
}

type BlueprintOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ContractFormResponse struct {
	Blueprints    []BlueprintOptionResponse      `json:"blueprints"`
	Selected      *BlueprintResponse             `json:"selected,omitempty"`
	InitialValues map[string]entities.FieldValue `json:"initial_values,omitempty"`
	ContractTypes []string                       `json:"contract_types"`
	DefaultType   string                         `json:"default_type"`
}

func FromContract(c entities.Contract) ContractResponse {
	res := ContractResponse{
		ID:            c.ID,
		Name:          c.Name,
		Type:          c.Type,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		ClientName:    c.ClientName,
		ContractValue: c.ContractValue,
		Description:   c.Description,
		Signature:     c.Signature,
		BlueprintID:   c.BlueprintID,
		RevokedAt:     c.RevokedAt,
		CanAdvance:    c.Status.CanAdvance(),
		CanRevoke:     c.Status.CanRevoke(),
	}
	if next, ok := entities.NextStage(c.Status); ok {
		res.NextStage = string(next)
	}
	for _, f := range c.BlueprintFields {
		res.BlueprintFields = append(res.BlueprintFields, BlueprintFieldResponse{
			FieldResponse: FromField(f.Field),
			Value:         f.Value,
		})
	}
	return res
}

func FromContracts(cs []entities.Contract) ContractListResponse {
	out := ContractListResponse{Contracts: make([]ContractResponse, 0, len(cs)), Total: len(cs)}
	for _, c := range cs {
		out.Contracts = append(out.Contracts, FromContract(c))
	}
	return out
}

// FromDashboard builds the dashboard view; all is the unfiltered collection
// used for the counts.
func FromDashboard(filter usecase.StatusFilter, result usecase.FilterResult, all []entities.Contract) DashboardResponse {
	res := DashboardResponse{
		Filter:    string(filter),
		Counts:    map[string]int{},
		Total:     result.Total,
		Shown:     len(result.Contracts),
		Contracts: make([]ContractResponse, 0, len(result.Contracts)),
	}
	for _, f := range usecase.StatusFilters() {
		res.Filters = append(res.Filters, string(f))
		if f != usecase.StatusFilterAll {
			res.Counts[string(f)] = 0
		}
	}
	for _, s := range entities.PipelineStages() {
		res.Stages = append(res.Stages, string(s))
	}
	for _, c := range all {
		res.Counts[string(c.Status)]++
	}
	for _, c := range result.Contracts {
		res.Contracts = append(res.Contracts, FromContract(c))
	}
	return res
}

func FromContractForm(form usecase.ContractForm) ContractFormResponse {
	res := ContractFormResponse{
		Blueprints:    make([]BlueprintOptionResponse, 0, len(form.Blueprints)),
		InitialValues: form.InitialValues,
		ContractTypes: form.ContractTypes,
		DefaultType:   form.DefaultType,
	}
	for _, o := range form.Blueprints {
		res.Blueprints = append(res.Blueprints, BlueprintOptionResponse{ID: o.ID, Name: o.Name})
	}
	if form.Selected != nil {
		bp := FromBlueprint(*form.Selected)
		res.Selected = &bp
	}
	return res
}
