package lattice

import (
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AppObject is a data object exposed by an app, in its internal shape.
type AppObject struct {
	Handle    Handle
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppObjectPayload is the wire shape of an AppObject.
type AppObjectPayload struct {
	Handle    Handle `json:"handle"              yaml:"handle"`
	Name      string `json:"name"                yaml:"name"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Validate implements validation.Validatable.
func (p AppObjectPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Handle),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.CreatedAt, isWireTime),
		validation.Field(&p.UpdatedAt, isWireTime),
	)
}

// ParseAppObject validates a wire payload and converts it to the internal
// shape.
func ParseAppObject(payload AppObjectPayload) (*AppObject, error) {
	if err := payload.Validate(); err != nil {
		return nil, schemaError(err)
	}

	object := &AppObject{
		Handle: payload.Handle,
		Name:   payload.Name,
	}

	if payload.CreatedAt != "" {
		createdAt, err := parseWireTime(payload.CreatedAt)
		if err != nil {
			return nil, schemaError(fmt.Errorf("createdAt: %w", err))
		}

		object.CreatedAt = createdAt
	}

	if payload.UpdatedAt != "" {
		updatedAt, err := parseWireTime(payload.UpdatedAt)
		if err != nil {
			return nil, schemaError(fmt.Errorf("updatedAt: %w", err))
		}

		object.UpdatedAt = updatedAt
	}

	return object, nil
}

// Payload converts the object back to its wire shape.
func (o *AppObject) Payload() AppObjectPayload {
	payload := AppObjectPayload{
		Handle: o.Handle,
		Name:   o.Name,
	}

	if !o.CreatedAt.IsZero() {
		payload.CreatedAt = formatWireTime(o.CreatedAt)
	}

	if !o.UpdatedAt.IsZero() {
		payload.UpdatedAt = formatWireTime(o.UpdatedAt)
	}

	return payload
}

// ParseAppObjectListingResponse validates a raw list body and converts every
// item.
func ParseAppObjectListingResponse(body []byte) (*ListResponse[AppObject], error) {
	var raw ListResponse[AppObjectPayload]
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing object listing response: %w", err)
	}

	result := &ListResponse[AppObject]{
		Items:      make([]AppObject, 0, len(raw.Items)),
		Pagination: raw.Pagination,
	}

	for _, payload := range raw.Items {
		object, err := ParseAppObject(payload)
		if err != nil {
			return nil, err
		}

		result.Items = append(result.Items, *object)
	}

	return result, nil
}

// ParseAppObjectItemResponse validates a raw item body.
func ParseAppObjectItemResponse(body []byte) (*AppObject, error) {
	var payload AppObjectPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parsing object response: %w", err)
	}

	return ParseAppObject(payload)
}
