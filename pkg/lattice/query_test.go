package lattice_test

import (
	"testing"

	"github.com/lattice-io/lattice-client/pkg/lattice"
	"github.com/stretchr/testify/assert"
)

func TestListOptions_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     *lattice.ListOptions
		expected string
	}{
		{
			name:     "nil options",
			opts:     nil,
			expected: "",
		},
		{
			name:     "empty options",
			opts:     lattice.NewListOptions(),
			expected: "",
		},
		{
			name:     "page size only",
			opts:     lattice.NewListOptions().WithPageSize(50),
			expected: "pagination%5BpageSize%5D=50",
		},
		{
			name:     "next token only",
			opts:     lattice.NewListOptions().WithNextToken("abc123"),
			expected: "pagination%5BnextToken%5D=abc123",
		},
		{
			name: "pagination before filters, filters sorted",
			opts: lattice.NewListOptions().
				WithPageSize(25).
				WithNextToken("tok").
				WithFilter("status", "enabled").
				WithFilter("app", "orderSystem"),
			expected: "pagination%5BpageSize%5D=25&pagination%5BnextToken%5D=tok&" +
				"filter%5Bapp%5D=orderSystem&filter%5Bstatus%5D=enabled",
		},
		{
			name:     "filter values are escaped",
			opts:     lattice.NewListOptions().WithFilter("name", "a b&c"),
			expected: "filter%5Bname%5D=a+b%26c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.opts.Encode())
		})
	}
}

func TestListOptions_ZeroFieldsOmitted(t *testing.T) {
	t.Parallel()

	opts := &lattice.ListOptions{PageSize: 0, NextToken: ""}
	assert.Empty(t, opts.Encode())

	opts = opts.WithNextToken("next")
	assert.NotContains(t, opts.Encode(), "pageSize")
	assert.Contains(t, opts.Encode(), "nextToken")

	opts = (&lattice.ListOptions{}).WithPageSize(10)
	assert.Contains(t, opts.Encode(), "pageSize")
	assert.NotContains(t, opts.Encode(), "nextToken")
}
