package lattice_test

import (
	"testing"
	"time"

	"github.com/lattice-io/lattice-client/pkg/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfiguration(t *testing.T) {
	t.Parallel()

	configuration, err := lattice.ParseConfiguration(lattice.ConfigurationPayload{
		Handle:     "sync-settings",
		Name:       "Sync Settings",
		Connection: "conn-1",
		Settings: map[string]interface{}{
			"interval": float64(300),
			"mode":     "incremental",
		},
		Status:    lattice.StatusDisabled,
		CreatedAt: "2024-06-01T08:30:00.000Z",
	})

	require.NoError(t, err)
	assert.Equal(t, lattice.Handle("sync-settings"), configuration.Handle)
	assert.Equal(t, "Sync Settings", configuration.Name)
	assert.Equal(t, "conn-1", configuration.Connection)
	assert.Equal(t, "incremental", configuration.Settings["mode"])
	assert.Equal(t, lattice.StatusDisabled, configuration.Status)
	assert.True(t, configuration.CreatedAt.Equal(
		time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)))
}

func TestParseConfiguration_StatusDefault(t *testing.T) {
	t.Parallel()

	configuration, err := lattice.ParseConfiguration(lattice.ConfigurationPayload{
		Handle: "sync-settings",
		Name:   "Sync Settings",
	})

	require.NoError(t, err)
	assert.Equal(t, lattice.StatusEnabled, configuration.Status)
}

func TestParseConfiguration_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload lattice.ConfigurationPayload
		field   string
	}{
		{
			name:    "missing name",
			payload: lattice.ConfigurationPayload{Handle: "sync-settings"},
			field:   "name",
		},
		{
			name:    "bad handle",
			payload: lattice.ConfigurationPayload{Handle: "Sync_Settings", Name: "Sync"},
			field:   "handle",
		},
		{
			name: "bad status",
			payload: lattice.ConfigurationPayload{
				Handle: "sync-settings",
				Name:   "Sync",
				Status: "archived",
			},
			field: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := lattice.ParseConfiguration(tt.payload)

			var validationErr *lattice.ValidationError

			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tt.field)
		})
	}
}

func TestConfiguration_PayloadRoundTrip(t *testing.T) {
	t.Parallel()

	original := &lattice.Configuration{
		Handle:     "warehouse-sync",
		Name:       "Warehouse Sync",
		Connection: "conn-9",
		Settings:   map[string]interface{}{"batchWindow": "5m"},
		Status:     lattice.StatusEnabled,
		UpdatedAt:  time.Date(2024, 7, 15, 12, 0, 0, 250_000_000, time.UTC),
	}

	roundTripped, err := lattice.ParseConfiguration(original.Payload())
	require.NoError(t, err)
	assert.Equal(t, original.Handle, roundTripped.Handle)
	assert.Equal(t, original.Name, roundTripped.Name)
	assert.Equal(t, original.Connection, roundTripped.Connection)
	assert.Equal(t, original.Settings, roundTripped.Settings)
	assert.Equal(t, original.Status, roundTripped.Status)
	assert.True(t, original.UpdatedAt.Equal(roundTripped.UpdatedAt))
	assert.True(t, roundTripped.CreatedAt.IsZero())
}

func TestConfigurationUpsertRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, lattice.ConfigurationUpsertRequest{Name: "Sync"}.Validate())
	assert.Error(t, lattice.ConfigurationUpsertRequest{}.Validate())
	assert.Error(t, lattice.ConfigurationUpsertRequest{
		Name:   "Sync",
		Status: "archived",
	}.Validate())
}

func TestParseConfigurationListingResponse(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"items": [
			{"handle": "sync-settings", "name": "Sync Settings"},
			{"handle": "exportRules", "name": "Export Rules", "status": "disabled"}
		],
		"pagination": {"pageSize": 2, "nextToken": "tok-2"}
	}`)

	listing, err := lattice.ParseConfigurationListingResponse(body)
	require.NoError(t, err)
	require.Len(t, listing.Items, 2)
	assert.Equal(t, lattice.StatusEnabled, listing.Items[0].Status)
	assert.Equal(t, lattice.StatusDisabled, listing.Items[1].Status)
	require.NotNil(t, listing.Pagination)
	assert.Equal(t, "tok-2", listing.Pagination.NextToken)
}
