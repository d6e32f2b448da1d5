package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goccy/go-json"
)

func TestStateCursorOnlyAdvances(t *testing.T) {
	state := NewState()

	state.SetCursor("invoices", "organization_id=10", "last_modified_time", "2024-05-01T00:00:00Z")
	state.SetCursor("invoices", "organization_id=10", "last_modified_time", "2024-04-01T00:00:00Z")
	assert.Equal(t, "2024-05-01T00:00:00Z", state.GetCursor("invoices", "organization_id=10", "last_modified_time"))

	state.SetCursor("invoices", "organization_id=10", "last_modified_time", "2024-06-01T00:00:00Z")
	assert.Equal(t, "2024-06-01T00:00:00Z", state.GetCursor("invoices", "organization_id=10", "last_modified_time"))
}

func TestStateCursorCompareHandlesOffsets(t *testing.T) {
	state := NewState()
	// lexicographically smaller, but a later instant
	state.SetCursor("invoices", "", "last_modified_time", "2024-05-01T00:00:00+02:00")
	state.SetCursor("invoices", "", "last_modified_time", "2024-04-30T23:30:00+00:00")
	assert.Equal(t, "2024-04-30T23:30:00+00:00", state.GetCursor("invoices", "", "last_modified_time"))
}

func TestStateContextPartitioning(t *testing.T) {
	state := NewState()
	state.SetCursor("invoices", "organization_id=10", "last_modified_time", "2024-01-01T00:00:00Z")
	state.SetCursor("invoices", "organization_id=20", "last_modified_time", "2024-02-02T00:00:00Z")

	assert.Equal(t, "2024-01-01T00:00:00Z", state.GetCursor("invoices", "organization_id=10", "last_modified_time"))
	assert.Equal(t, "2024-02-02T00:00:00Z", state.GetCursor("invoices", "organization_id=20", "last_modified_time"))
	assert.Empty(t, state.GetCursor("invoices", "organization_id=30", "last_modified_time"))
}

func TestStateEmptyValueIgnored(t *testing.T) {
	state := NewState()
	state.SetCursor("invoices", "", "last_modified_time", "")
	assert.True(t, state.IsZero())
}

func TestStateRoundTrip(t *testing.T) {
	state := NewState()
	state.SetCursor("contacts", "organization_id=10", "last_modified_time", "2024-01-01T00:00:00Z")

	data, err := json.Marshal(state)
	assert.NoError(t, err)

	restored := &State{}
	assert.NoError(t, json.Unmarshal(data, restored))
	restored.Init()
	assert.Equal(t, "2024-01-01T00:00:00Z", restored.GetCursor("contacts", "organization_id=10", "last_modified_time"))
	assert.Equal(t, StreamType, restored.Type)
}

func TestRequestContextSignature(t *testing.T) {
	assert.Empty(t, RequestContext{}.Signature())
	assert.Equal(t,
		RequestContext{"a": "1", "b": "2"}.Signature(),
		RequestContext{"b": "2", "a": "1"}.Signature(),
	)
	assert.Equal(t, "a=1,b=2", RequestContext{"b": "2", "a": "1"}.Signature())
}

func TestRequestContextForkIsolation(t *testing.T) {
	parent := RequestContext{"organization_id": "10"}
	child := parent.Fork("journal_id", "7")

	assert.Equal(t, "7", child["journal_id"])
	assert.NotContains(t, parent, "journal_id")
}
