package models

// EntityType selects the write surface for a batch submission. Values are
// the path segments of the generic batch endpoints; entity types without a
// generic endpoint route to their per-resource endpoints instead.
type EntityType string

const (
	EntityTask         EntityType = "task"
	EntityTag          EntityType = "tag"
	EntityFilter       EntityType = "filter"
	EntityProject      EntityType = "project"
	EntityProjectGroup EntityType = "projectGroup"
	EntityColumn       EntityType = "column"
	EntityHabit        EntityType = "habit"
)

// BatchRequest is one write submission: up to three ordered record lists.
// Records are opaque to the write path; the façades shape them. Empty
// lists stay off the wire.
type BatchRequest struct {
	Add    []any `json:"add,omitempty"`
	Update []any `json:"update,omitempty"`
	Delete []any `json:"delete,omitempty"`
}

// Empty reports whether the request carries no records at all.
func (r BatchRequest) Empty() bool {
	return len(r.Add) == 0 && len(r.Update) == 0 && len(r.Delete) == 0
}

// BatchResponse is the receipt shape of the generic batch endpoints: new
// etags per record id, and per-record errors for partial failures.
type BatchResponse struct {
	ID2Etag  map[string]string `json:"id2etag"`
	ID2Error map[string]string `json:"id2error"`
}

// WriteState tracks one write submission through the coordinator.
//
//	built → submitted → materialized
//	                  → requires-refetch → materialized
//	                  → rejected
//	                  → failed
//
// requires-refetch is not terminal: it triggers exactly one follow-up read
// and then resolves to materialized or failed.
type WriteState int

const (
	WriteBuilt WriteState = iota
	WriteSubmitted
	WriteMaterialized
	WriteRequiresRefetch
	WriteRejected
	WriteFailed
)

func (s WriteState) String() string {
	switch s {
	case WriteBuilt:
		return "built"
	case WriteSubmitted:
		return "submitted"
	case WriteMaterialized:
		return "materialized"
	case WriteRequiresRefetch:
		return "requires-refetch"
	case WriteRejected:
		return "rejected"
	case WriteFailed:
		return "failed"
	}
	return "unknown"
}

// BatchResult is the outcome of a successful submission. Records carries
// the materialized entities when the entity type's response shape (or the
// follow-up read) produces them; Etags and Errors carry the receipt maps
// of the generic batch endpoints.
type BatchResult struct {
	State   WriteState
	Records []any
	Etags   map[string]string
	Errors  map[string]string
}
