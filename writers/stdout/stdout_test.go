package stdout

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openledgerio/booksync/types"
)

func TestWriteEmitsRecordMessages(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	require.NoError(t, w.Setup(context.Background()))
	require.NoError(t, w.Write(context.Background(), "invoices", types.Record{"invoice_id": "1"}))
	require.NoError(t, w.Write(context.Background(), "contacts", types.Record{"contact_id": "2"}))
	require.NoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var message types.Message
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &message))
	assert.Equal(t, types.RecordMessage, message.Type)
	require.NotNil(t, message.Record)
	assert.Equal(t, "invoices", message.Record.Stream)
	assert.Equal(t, "1", message.Record.Data["invoice_id"])
}

func TestCloseFlushesBufferedOutput(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	require.NoError(t, w.Write(context.Background(), "invoices", types.Record{"invoice_id": "1"}))
	require.NoError(t, w.Close())
	assert.NotEmpty(t, buf.String())
}
