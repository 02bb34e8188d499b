package lattice_test

import (
	"encoding/json"
	"testing"

	"github.com/lattice-io/lattice-client/pkg/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_Validate(t *testing.T) {
	t.Parallel()

	valid := []lattice.Handle{"test-app", "testApp", "a", "order-items2", "orderItems"}
	for _, handle := range valid {
		assert.NoError(t, handle.Validate(), "handle %q", handle)
	}

	invalid := []lattice.Handle{"Test-App", "test_app", "", "-app", "test--app", "9lives"}
	for _, handle := range invalid {
		assert.Error(t, handle.Validate(), "handle %q", handle)
	}
}

func TestRef_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("bare handle string", func(t *testing.T) {
		t.Parallel()

		var ref lattice.Ref

		require.NoError(t, json.Unmarshal([]byte(`"test-app"`), &ref))
		assert.Equal(t, lattice.Handle("test-app"), ref.Handle)
	})

	t.Run("object form", func(t *testing.T) {
		t.Parallel()

		var ref lattice.Ref

		require.NoError(t, json.Unmarshal([]byte(`{"handle": "test-app"}`), &ref))
		assert.Equal(t, lattice.Handle("test-app"), ref.Handle)
	})

	t.Run("canonical marshal is the object form", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(lattice.RefOf("test-app"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"handle": "test-app"}`, string(data))
	})

	t.Run("both arms decode to the same ref", func(t *testing.T) {
		t.Parallel()

		var fromString, fromObject lattice.Ref

		require.NoError(t, json.Unmarshal([]byte(`"orders"`), &fromString))
		require.NoError(t, json.Unmarshal([]byte(`{"handle": "orders"}`), &fromObject))
		assert.Equal(t, fromString, fromObject)
	})
}

func TestPageSize_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	type envelope struct {
		PageSize lattice.PageSize `json:"pageSize,omitempty"`
	}

	t.Run("number form", func(t *testing.T) {
		t.Parallel()

		var e envelope

		require.NoError(t, json.Unmarshal([]byte(`{"pageSize": 25}`), &e))
		assert.Equal(t, lattice.PageSize("25"), e.PageSize)
	})

	t.Run("string form", func(t *testing.T) {
		t.Parallel()

		var e envelope

		require.NoError(t, json.Unmarshal([]byte(`{"pageSize": "25"}`), &e))
		assert.Equal(t, lattice.PageSize("25"), e.PageSize)
	})

	t.Run("unset omits on marshal", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(envelope{})
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})
}

func TestListResponse_Unmarshal(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"items": [{"handle": "crm", "name": "CRM"}],
		"pagination": {"pageSize": 1, "nextToken": "tok"}
	}`)

	var resp lattice.ListResponse[lattice.AppPayload]

	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, lattice.Handle("crm"), resp.Items[0].Handle)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, lattice.PageSize("1"), resp.Pagination.PageSize)
	assert.Equal(t, "tok", resp.Pagination.NextToken)
}
