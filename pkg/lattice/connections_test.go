package lattice_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lattice-io/lattice-client/pkg/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConnection_Defaults(t *testing.T) {
	t.Parallel()

	t.Run("absent fields get defaults", func(t *testing.T) {
		t.Parallel()

		connection, err := lattice.ParseConnection(lattice.ConnectionPayload{
			ID:     "conn-1",
			App:    lattice.RefOf("crm"),
			Object: lattice.RefOf("contacts"),
		})

		require.NoError(t, err)
		assert.Equal(t, lattice.JoinTypeOne, connection.JoinType)
		assert.Equal(t, lattice.StatusEnabled, connection.Status)
	})

	t.Run("explicit values are never overridden", func(t *testing.T) {
		t.Parallel()

		connection, err := lattice.ParseConnection(lattice.ConnectionPayload{
			ID:       "conn-2",
			App:      lattice.RefOf("crm"),
			Object:   lattice.RefOf("contacts"),
			JoinType: lattice.JoinTypeMany,
			Status:   lattice.StatusDisabled,
		})

		require.NoError(t, err)
		assert.Equal(t, lattice.JoinTypeMany, connection.JoinType)
		assert.Equal(t, lattice.StatusDisabled, connection.Status)
	})
}

func TestParseConnection_UnionNormalization(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"id": "conn-3",
		"app": "crm",
		"object": {"handle": "contacts"},
		"joinType": "many"
	}`)

	var payload lattice.ConnectionPayload

	require.NoError(t, json.Unmarshal(body, &payload))

	connection, err := lattice.ParseConnection(payload)
	require.NoError(t, err)
	assert.Equal(t, lattice.RefOf("crm"), connection.App)
	assert.Equal(t, lattice.RefOf("contacts"), connection.Object)
	assert.Equal(t, lattice.JoinTypeMany, connection.JoinType)
}

func TestParseConnection_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload lattice.ConnectionPayload
		field   string
	}{
		{
			name: "missing id",
			payload: lattice.ConnectionPayload{
				App:    lattice.RefOf("crm"),
				Object: lattice.RefOf("contacts"),
			},
			field: "id",
		},
		{
			name: "bad join type",
			payload: lattice.ConnectionPayload{
				ID:       "conn-1",
				App:      lattice.RefOf("crm"),
				Object:   lattice.RefOf("contacts"),
				JoinType: "both",
			},
			field: "joinType",
		},
		{
			name: "bad status",
			payload: lattice.ConnectionPayload{
				ID:     "conn-1",
				App:    lattice.RefOf("crm"),
				Object: lattice.RefOf("contacts"),
				Status: "paused",
			},
			field: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := lattice.ParseConnection(tt.payload)

			var validationErr *lattice.ValidationError

			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields, tt.field)
		})
	}
}

func TestConnection_PayloadRoundTrip(t *testing.T) {
	t.Parallel()

	original := &lattice.Connection{
		ID:        "conn-4",
		App:       lattice.RefOf("billing"),
		Object:    lattice.RefOf("invoices"),
		JoinType:  lattice.JoinTypeMany,
		Status:    lattice.StatusDisabled,
		CreatedAt: time.Date(2024, 2, 29, 23, 59, 59, 500_000_000, time.UTC),
		UpdatedAt: time.Date(2024, 3, 1, 0, 0, 1, 0, time.UTC),
	}

	roundTripped, err := lattice.ParseConnection(original.Payload())
	require.NoError(t, err)
	assert.Equal(t, original.ID, roundTripped.ID)
	assert.Equal(t, original.App, roundTripped.App)
	assert.Equal(t, original.Object, roundTripped.Object)
	assert.Equal(t, original.JoinType, roundTripped.JoinType)
	assert.Equal(t, original.Status, roundTripped.Status)
	assert.True(t, original.CreatedAt.Equal(roundTripped.CreatedAt))
	assert.True(t, original.UpdatedAt.Equal(roundTripped.UpdatedAt))
}

func TestConnectionUpsertRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, lattice.ConnectionUpsertRequest{}.Validate())
	assert.NoError(t, lattice.ConnectionUpsertRequest{
		JoinType: lattice.JoinTypeOne,
		Status:   lattice.StatusEnabled,
	}.Validate())
	assert.Error(t, lattice.ConnectionUpsertRequest{JoinType: "several"}.Validate())
}
