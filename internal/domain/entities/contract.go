package entities

// ContractStatus represents the lifecycle of a contract.
//
// Domain notes:
//   - Created, Approved, Sent, Signed and Locked form the ordered pipeline.
//   - Revoked sits outside the pipeline; it is reachable from any status and
//     nothing leads back out of it.

type ContractStatus string

const (
	ContractStatusCreated  ContractStatus = "Created"
	ContractStatusApproved ContractStatus = "Approved"
	ContractStatusSent     ContractStatus = "Sent"
	ContractStatusSigned   ContractStatus = "Signed"
	ContractStatusLocked   ContractStatus = "Locked"
	ContractStatusRevoked  ContractStatus = "Revoked"
)

var pipelineStages = [...]ContractStatus{
	ContractStatusCreated,
	ContractStatusApproved,
	ContractStatusSent,
	ContractStatusSigned,
	ContractStatusLocked,
}

// PipelineStages returns the ordered pipeline. The slice is a fresh copy.
func PipelineStages() []ContractStatus {
	out := make([]ContractStatus, len(pipelineStages))
	copy(out, pipelineStages[:])
	return out
}

// StageIndex returns the position of s in the pipeline, or -1 when s is not a
// pipeline stage (Revoked or an unknown value).
func StageIndex(s ContractStatus) int {
	for i, stage := range pipelineStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// NextStage returns the stage following s. ok is false at the last stage and
// for statuses outside the pipeline.
func NextStage(s ContractStatus) (next ContractStatus, ok bool) {
	i := StageIndex(s)
	if i < 0 || i == len(pipelineStages)-1 {
		return s, false
	}
	return pipelineStages[i+1], true
}

func (s ContractStatus) Valid() bool {
	return s == ContractStatusRevoked || StageIndex(s) >= 0
}

func (s ContractStatus) CanAdvance() bool {
	_, ok := NextStage(s)
	return ok
}

func (s ContractStatus) CanRevoke() bool {
	return s != ContractStatusRevoked
}

// FieldWithValue is a blueprint field captured together with the value
// entered for it when the contract was generated.
type FieldWithValue struct {
	Field
	Value FieldValue `json:"value"`
}

// Contract is a single agreement tracked through the pipeline.
//
// Storage model (key-value):
//   - key: contract_data
//   - value: JSON array of Contract records, insertion order preserved
//
// Blueprint linkage:
//   - BlueprintID is a plain reference; deleting the blueprint leaves it dangling.
//   - BlueprintFields snapshots the blueprint layout at creation time, so the
//     printed contract does not change when the blueprint is edited later.
type Contract struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	Status        ContractStatus `json:"status"`
	CreatedAt     string         `json:"createdAt"`
	ClientName    string         `json:"clientName"`
	ContractValue string         `json:"contractValue"`
	Description   string         `json:"description"`
	Signature     *string        `json:"signature"`

	BlueprintID     string           `json:"blueprintId,omitempty"`
	BlueprintFields []FieldWithValue `json:"blueprintFields,omitempty"`
	RevokedAt       string           `json:"revokedAt,omitempty"`
}

// FromBlueprint reports whether the contract was generated from a blueprint.
func (c Contract) FromBlueprint() bool {
	return len(c.BlueprintFields) > 0
}

// Clone returns a copy that shares no pointers or slices with c.
func (c Contract) Clone() Contract {
	out := c
	if c.Signature != nil {
		sig := *c.Signature
		out.Signature = &sig
	}
	if c.BlueprintFields != nil {
		out.BlueprintFields = make([]FieldWithValue, len(c.BlueprintFields))
		copy(out.BlueprintFields, c.BlueprintFields)
	}
	return out
}

// ContractTypes are the types offered by the standard (non-blueprint) form.
var ContractTypes = []string{"Standard", "Lease", "Service", "Employment"}

const DefaultContractType = "Standard"

func IsContractType(t string) bool {
	for _, ct := range ContractTypes {
		if ct == t {
			return true
		}
	}
	return false
}
