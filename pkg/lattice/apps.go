package lattice

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// App is an integratable application in the Lattice catalog, in its internal
// shape with native URL and timestamp types.
type App struct {
	Handle    Handle
	Name      string
	URL       *url.URL
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppPayload is the wire shape of an App.
type AppPayload struct {
	Handle    Handle `json:"handle"              yaml:"handle"`
	Name      string `json:"name"                yaml:"name"`
	URL       string `json:"url,omitempty"       yaml:"url,omitempty"`
	CreatedAt string `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Validate implements validation.Validatable.
func (p AppPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Handle),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.URL, is.URL),
		validation.Field(&p.CreatedAt, isWireTime),
		validation.Field(&p.UpdatedAt, isWireTime),
	)
}

// ParseApp validates a wire payload and converts it to the internal shape.
func ParseApp(payload AppPayload) (*App, error) {
	if err := payload.Validate(); err != nil {
		return nil, schemaError(err)
	}

	app := &App{
		Handle: payload.Handle,
		Name:   payload.Name,
	}

	if payload.URL != "" {
		parsed, err := url.Parse(payload.URL)
		if err != nil {
			return nil, schemaError(fmt.Errorf("url: %w", err))
		}

		app.URL = parsed
	}

	if payload.CreatedAt != "" {
		createdAt, err := parseWireTime(payload.CreatedAt)
		if err != nil {
			return nil, schemaError(fmt.Errorf("createdAt: %w", err))
		}

		app.CreatedAt = createdAt
	}

	if payload.UpdatedAt != "" {
		updatedAt, err := parseWireTime(payload.UpdatedAt)
		if err != nil {
			return nil, schemaError(fmt.Errorf("updatedAt: %w", err))
		}

		app.UpdatedAt = updatedAt
	}

	return app, nil
}

// Payload converts the app back to its wire shape. The mapping is lossless
// to the millisecond.
func (a *App) Payload() AppPayload {
	payload := AppPayload{
		Handle: a.Handle,
		Name:   a.Name,
	}

	if a.URL != nil {
		payload.URL = a.URL.String()
	}

	if !a.CreatedAt.IsZero() {
		payload.CreatedAt = formatWireTime(a.CreatedAt)
	}

	if !a.UpdatedAt.IsZero() {
		payload.UpdatedAt = formatWireTime(a.UpdatedAt)
	}

	return payload
}

// ParseAppListingResponse validates a raw list body and converts every item.
func ParseAppListingResponse(body []byte) (*ListResponse[App], error) {
	var raw ListResponse[AppPayload]
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing app listing response: %w", err)
	}

	result := &ListResponse[App]{
		Items:      make([]App, 0, len(raw.Items)),
		Pagination: raw.Pagination,
	}

	for _, payload := range raw.Items {
		app, err := ParseApp(payload)
		if err != nil {
			return nil, err
		}

		result.Items = append(result.Items, *app)
	}

	return result, nil
}

// ParseAppItemResponse validates a raw item body.
func ParseAppItemResponse(body []byte) (*App, error) {
	var payload AppPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parsing app response: %w", err)
	}

	return ParseApp(payload)
}
