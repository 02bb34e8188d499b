package lattice

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ListOptions represents the query surface of list operations: pagination
// controls plus arbitrary filter entries.
type ListOptions struct {
	// PageSize caps the number of items per page. Zero means unset.
	PageSize int
	// NextToken is the opaque cursor from a previous list response. Empty
	// means unset.
	NextToken string
	// Filters hold filter[<name>]=<value> entries.
	Filters map[string]string
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{
		Filters: make(map[string]string),
	}
}

// WithPageSize sets the page size.
func (o *ListOptions) WithPageSize(size int) *ListOptions {
	o.PageSize = size

	return o
}

// WithNextToken sets the pagination cursor.
func (o *ListOptions) WithNextToken(token string) *ListOptions {
	o.NextToken = token

	return o
}

// WithFilter adds a filter entry.
func (o *ListOptions) WithFilter(name, value string) *ListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string]string)
	}

	o.Filters[name] = value

	return o
}

// Encode renders the query string: pagination parameters first, then filters
// in sorted key order. Unset fields are omitted entirely, never serialized as
// empty values. The ordering is not significant to the server but is kept
// deterministic.
func (o *ListOptions) Encode() string {
	if o == nil {
		return ""
	}

	var pairs []string

	appendPair := func(key, value string) {
		pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}

	if o.PageSize > 0 {
		appendPair("pagination[pageSize]", strconv.Itoa(o.PageSize))
	}

	if o.NextToken != "" {
		appendPair("pagination[nextToken]", o.NextToken)
	}

	filterNames := make([]string, 0, len(o.Filters))
	for name := range o.Filters {
		filterNames = append(filterNames, name)
	}

	sort.Strings(filterNames)

	for _, name := range filterNames {
		appendPair("filter["+name+"]", o.Filters[name])
	}

	return strings.Join(pairs, "&")
}
