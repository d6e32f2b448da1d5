package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantPage int
		wantMore bool
	}{
		{
			name:     "more pages available",
			body:     `{"invoices":[],"page_context":{"page":2,"has_more_page":true}}`,
			wantPage: 3,
			wantMore: true,
		},
		{
			name:     "last page",
			body:     `{"invoices":[],"page_context":{"page":5,"has_more_page":false}}`,
			wantMore: false,
		},
		{
			name:     "no pagination block",
			body:     `{"organizations":[{"organization_id":"1"}]}`,
			wantMore: false,
		},
		{
			name:     "more pages without page number",
			body:     `{"page_context":{"has_more_page":true}}`,
			wantPage: 2,
			wantMore: true,
		},
		{
			name:     "empty body",
			body:     ``,
			wantMore: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, more := nextPage([]byte(tt.body))
			assert.Equal(t, tt.wantMore, more)
			if tt.wantMore {
				assert.Equal(t, tt.wantPage, page)
			}
		})
	}
}

func TestExtractRecords(t *testing.T) {
	t.Run("array payload", func(t *testing.T) {
		body := `{"invoices":[{"invoice_id":"1"},{"invoice_id":"2"}]}`
		records := extractRecords([]byte(body), "invoices")
		require.Len(t, records, 2)
		assert.Equal(t, "1", records[0].Get("invoice_id").String())
	})

	t.Run("single object payload", func(t *testing.T) {
		body := `{"journal":{"journal_id":"77"}}`
		records := extractRecords([]byte(body), "journal")
		require.Len(t, records, 1)
		assert.Equal(t, "77", records[0].Get("journal_id").String())
	})

	t.Run("empty body yields no records", func(t *testing.T) {
		assert.Empty(t, extractRecords(nil, "invoices"))
	})

	t.Run("missing key yields no records", func(t *testing.T) {
		assert.Empty(t, extractRecords([]byte(`{"page_context":{}}`), "invoices"))
	})
}
