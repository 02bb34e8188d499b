package lattice

import (
	"encoding/json"
	"time"
)

// wireTimeFormat is the ISO-8601 form used for timestamps in wire payloads.
// Millisecond precision, UTC.
const wireTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// PageSize is a page size as it appears on the wire, where the server may
// send either a JSON number or a numeric string. The zero value means unset.
type PageSize string

func (p PageSize) String() string {
	return string(p)
}

// UnmarshalJSON accepts both the number and the string form.
func (p *PageSize) UnmarshalJSON(data []byte) error {
	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		*p = PageSize(number.String())

		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*p = PageSize(s)

	return nil
}

// MarshalJSON renders the string form.
func (p PageSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(p))
}

// Pagination carries the page controls echoed by list responses.
type Pagination struct {
	PageSize  PageSize `json:"pageSize,omitempty"  yaml:"pageSize,omitempty"`
	NextToken string   `json:"nextToken,omitempty" yaml:"nextToken,omitempty"`
}

// ListResponse is the envelope for paginated list responses.
type ListResponse[T any] struct {
	Items      []T         `json:"items"                yaml:"items"`
	Pagination *Pagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// Status is the enablement state shared by connections and configurations.
type Status string

// Status values. StatusEnabled is the default applied when a wire payload
// omits the field.
const (
	StatusEnabled  Status = "enabled"
	StatusDisabled Status = "disabled"
)

// Ref identifies a resource by handle. On the wire it may appear either as a
// bare handle string or as an object of the form {"handle": "..."}; both
// decode to the same canonical Ref, and Ref always encodes as the object
// form. This is the normalization point for the handle-or-reference union.
type Ref struct {
	Handle Handle `json:"handle" yaml:"handle"`
}

// RefOf builds a canonical reference from a handle.
func RefOf(handle Handle) Ref {
	return Ref{Handle: handle}
}

// UnmarshalJSON accepts both union arms.
func (r *Ref) UnmarshalJSON(data []byte) error {
	var handle string
	if err := json.Unmarshal(data, &handle); err == nil {
		r.Handle = Handle(handle)

		return nil
	}

	var obj struct {
		Handle string `json:"handle"`
	}

	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	r.Handle = Handle(obj.Handle)

	return nil
}

// Validate implements validation.Validatable.
func (r Ref) Validate() error {
	return r.Handle.Validate()
}

// formatWireTime renders a timestamp in the wire format. Sub-millisecond
// precision is truncated.
func formatWireTime(t time.Time) string {
	return t.UTC().Format(wireTimeFormat)
}

// parseWireTime parses an ISO-8601 timestamp, with or without fractional
// seconds.
func parseWireTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
