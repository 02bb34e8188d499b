package lattice

import (
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// JoinType describes the cardinality of a connection.
type JoinType string

// JoinType values. JoinTypeOne is the default applied when a wire payload
// omits the field.
const (
	JoinTypeOne  JoinType = "one"
	JoinTypeMany JoinType = "many"
)

// Connection is a live join between an app object and the platform, in its
// internal shape. App and Object are always in canonical reference form;
// JoinType and Status always carry a value, with defaults applied during
// parsing when the wire payload omitted them.
type Connection struct {
	ID        string
	App       Ref
	Object    Ref
	JoinType  JoinType
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConnectionPayload is the wire shape of a Connection. App and Object accept
// either a bare handle string or an object reference.
type ConnectionPayload struct {
	ID        string   `json:"id"                  yaml:"id"`
	App       Ref      `json:"app"                 yaml:"app"`
	Object    Ref      `json:"object"              yaml:"object"`
	JoinType  JoinType `json:"joinType,omitempty"  yaml:"joinType,omitempty"`
	Status    Status   `json:"status,omitempty"    yaml:"status,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Validate implements validation.Validatable.
func (p ConnectionPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ID, validation.Required),
		validation.Field(&p.App),
		validation.Field(&p.Object),
		validation.Field(&p.JoinType, validation.In(JoinTypeOne, JoinTypeMany)),
		validation.Field(&p.Status, validation.In(StatusEnabled, StatusDisabled)),
		validation.Field(&p.CreatedAt, isWireTime),
		validation.Field(&p.UpdatedAt, isWireTime),
	)
}

// ConnectionUpsertRequest is the body of a connection upsert. Omitted fields
// keep the server-side defaults.
type ConnectionUpsertRequest struct {
	JoinType JoinType `json:"joinType,omitempty" yaml:"joinType,omitempty"`
	Status   Status   `json:"status,omitempty"   yaml:"status,omitempty"`
}

// Validate implements validation.Validatable.
func (r ConnectionUpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.JoinType, validation.In(JoinTypeOne, JoinTypeMany)),
		validation.Field(&r.Status, validation.In(StatusEnabled, StatusDisabled)),
	)
}

// ParseConnection validates a wire payload and converts it to the internal
// shape. JoinType defaults to "one" and Status to "enabled" only when the
// payload omitted them; explicit values are never overridden.
func ParseConnection(payload ConnectionPayload) (*Connection, error) {
	if err := payload.Validate(); err != nil {
		return nil, schemaError(err)
	}

	connection := &Connection{
		ID:       payload.ID,
		App:      payload.App,
		Object:   payload.Object,
		JoinType: payload.JoinType,
		Status:   payload.Status,
	}

	if connection.JoinType == "" {
		connection.JoinType = JoinTypeOne
	}

	if connection.Status == "" {
		connection.Status = StatusEnabled
	}

	if payload.CreatedAt != "" {
		createdAt, err := parseWireTime(payload.CreatedAt)
		if err != nil {
			return nil, schemaError(fmt.Errorf("createdAt: %w", err))
		}

		connection.CreatedAt = createdAt
	}

	if payload.UpdatedAt != "" {
		updatedAt, err := parseWireTime(payload.UpdatedAt)
		if err != nil {
			return nil, schemaError(fmt.Errorf("updatedAt: %w", err))
		}

		connection.UpdatedAt = updatedAt
	}

	return connection, nil
}

// Payload converts the connection back to its wire shape, with references in
// canonical object form.
func (c *Connection) Payload() ConnectionPayload {
	payload := ConnectionPayload{
		ID:       c.ID,
		App:      c.App,
		Object:   c.Object,
		JoinType: c.JoinType,
		Status:   c.Status,
	}

	if !c.CreatedAt.IsZero() {
		payload.CreatedAt = formatWireTime(c.CreatedAt)
	}

	if !c.UpdatedAt.IsZero() {
		payload.UpdatedAt = formatWireTime(c.UpdatedAt)
	}

	return payload
}

// ParseConnectionListingResponse validates a raw list body and converts every
// item.
func ParseConnectionListingResponse(body []byte) (*ListResponse[Connection], error) {
	var raw ListResponse[ConnectionPayload]
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing connection listing response: %w", err)
	}

	result := &ListResponse[Connection]{
		Items:      make([]Connection, 0, len(raw.Items)),
		Pagination: raw.Pagination,
	}

	for _, payload := range raw.Items {
		connection, err := ParseConnection(payload)
		if err != nil {
			return nil, err
		}

		result.Items = append(result.Items, *connection)
	}

	return result, nil
}

// ParseConnectionItemResponse validates a raw item body.
func ParseConnectionItemResponse(body []byte) (*Connection, error) {
	var payload ConnectionPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parsing connection response: %w", err)
	}

	return ParseConnection(payload)
}
