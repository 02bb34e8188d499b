package lattice

import (
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Configuration is a named settings bundle, in its internal shape. Status
// always carries a value, with the default applied during parsing when the
// wire payload omitted it.
type Configuration struct {
	Handle     Handle
	Name       string
	Connection string
	Settings   map[string]interface{}
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ConfigurationPayload is the wire shape of a Configuration.
type ConfigurationPayload struct {
	Handle     Handle                 `json:"handle"               yaml:"handle"`
	Name       string                 `json:"name"                 yaml:"name"`
	Connection string                 `json:"connection,omitempty" yaml:"connection,omitempty"`
	Settings   map[string]interface{} `json:"settings,omitempty"   yaml:"settings,omitempty"`
	Status     Status                 `json:"status,omitempty"     yaml:"status,omitempty"`
	CreatedAt  string                 `json:"createdAt,omitempty"  yaml:"createdAt,omitempty"`
	UpdatedAt  string                 `json:"updatedAt,omitempty"  yaml:"updatedAt,omitempty"`
}

// Validate implements validation.Validatable.
func (p ConfigurationPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Handle),
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Status, validation.In(StatusEnabled, StatusDisabled)),
		validation.Field(&p.CreatedAt, isWireTime),
		validation.Field(&p.UpdatedAt, isWireTime),
	)
}

// ConfigurationUpsertRequest is the body of a configuration upsert.
type ConfigurationUpsertRequest struct {
	Name       string                 `json:"name"                 yaml:"name"`
	Connection string                 `json:"connection,omitempty" yaml:"connection,omitempty"`
	Settings   map[string]interface{} `json:"settings,omitempty"   yaml:"settings,omitempty"`
	Status     Status                 `json:"status,omitempty"     yaml:"status,omitempty"`
}

// Validate implements validation.Validatable.
func (r ConfigurationUpsertRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Status, validation.In(StatusEnabled, StatusDisabled)),
	)
}

// ParseConfiguration validates a wire payload and converts it to the internal
// shape. Status defaults to "enabled" only when the payload omitted it.
func ParseConfiguration(payload ConfigurationPayload) (*Configuration, error) {
	if err := payload.Validate(); err != nil {
		return nil, schemaError(err)
	}

	configuration := &Configuration{
		Handle:     payload.Handle,
		Name:       payload.Name,
		Connection: payload.Connection,
		Settings:   payload.Settings,
		Status:     payload.Status,
	}

	if configuration.Status == "" {
		configuration.Status = StatusEnabled
	}

	if payload.CreatedAt != "" {
		createdAt, err := parseWireTime(payload.CreatedAt)
		if err != nil {
			return nil, schemaError(fmt.Errorf("createdAt: %w", err))
		}

		configuration.CreatedAt = createdAt
	}

	if payload.UpdatedAt != "" {
		updatedAt, err := parseWireTime(payload.UpdatedAt)
		if err != nil {
			return nil, schemaError(fmt.Errorf("updatedAt: %w", err))
		}

		configuration.UpdatedAt = updatedAt
	}

	return configuration, nil
}

// Payload converts the configuration back to its wire shape.
func (c *Configuration) Payload() ConfigurationPayload {
	payload := ConfigurationPayload{
		Handle:     c.Handle,
		Name:       c.Name,
		Connection: c.Connection,
		Settings:   c.Settings,
		Status:     c.Status,
	}

	if !c.CreatedAt.IsZero() {
		payload.CreatedAt = formatWireTime(c.CreatedAt)
	}

	if !c.UpdatedAt.IsZero() {
		payload.UpdatedAt = formatWireTime(c.UpdatedAt)
	}

	return payload
}

// ParseConfigurationListingResponse validates a raw list body and converts
// every item.
func ParseConfigurationListingResponse(body []byte) (*ListResponse[Configuration], error) {
	var raw ListResponse[ConfigurationPayload]
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parsing configuration listing response: %w", err)
	}

	result := &ListResponse[Configuration]{
		Items:      make([]Configuration, 0, len(raw.Items)),
		Pagination: raw.Pagination,
	}

	for _, payload := range raw.Items {
		configuration, err := ParseConfiguration(payload)
		if err != nil {
			return nil, err
		}

		result.Items = append(result.Items, *configuration)
	}

	return result, nil
}

// ParseConfigurationItemResponse validates a raw item body.
func ParseConfigurationItemResponse(body []byte) (*Configuration, error) {
	var payload ConfigurationPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parsing configuration response: %w", err)
	}

	return ParseConfiguration(payload)
}
