package driver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openledgerio/booksync/types"
)

func findStream(t *testing.T, z *ZohoBooks, name string) *types.Stream {
	t.Helper()
	for _, stream := range z.registry.Flatten() {
		if stream.Name == name {
			return stream
		}
	}
	t.Fatalf("stream %s not in registry", name)
	return nil
}

func TestResolveBound(t *testing.T) {
	t.Run("stored cursor advances by one second", func(t *testing.T) {
		z := newTestDriver(t, nil, "")
		invoices := findStream(t, z, "invoices")
		rctx := types.RequestContext{"organization_id": "10"}
		z.state.SetCursor("invoices", rctx.Signature(), "last_modified_time", "2024-03-10T05:06:07+02:00")

		bound, err := z.resolveBound(invoices, rctx)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-10T05:06:08+02:00", bound)
	})

	t.Run("sub-second precision is dropped", func(t *testing.T) {
		z := newTestDriver(t, nil, "")
		invoices := findStream(t, z, "invoices")
		rctx := types.RequestContext{"organization_id": "10"}
		z.state.SetCursor("invoices", rctx.Signature(), "last_modified_time", "2024-03-10T05:06:07.900-02:00")

		bound, err := z.resolveBound(invoices, rctx)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-10T05:06:08-02:00", bound)
	})

	t.Run("falls back to configured start date", func(t *testing.T) {
		z := newTestDriver(t, &Config{StartDate: "2021-01-01"}, "")
		bound, err := z.resolveBound(findStream(t, z, "invoices"), types.RequestContext{"organization_id": "10"})
		require.NoError(t, err)
		assert.Equal(t, "2021-01-01T00:00:01+00:00", bound)
	})

	t.Run("full refresh stream is unbounded", func(t *testing.T) {
		z := newTestDriver(t, nil, "")
		bound, err := z.resolveBound(findStream(t, z, "journals_id"), types.RequestContext{"organization_id": "10"})
		require.NoError(t, err)
		assert.Empty(t, bound)
	})

	t.Run("detail streams keep one global cursor", func(t *testing.T) {
		z := newTestDriver(t, nil, "")
		journals := findStream(t, z, "journals")
		z.state.SetCursor("journals", "", "last_modified_time", "2024-01-02T00:00:00Z")

		bound, err := z.resolveBound(journals, types.RequestContext{"organization_id": "10", "journal_id": "7"})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-02T00:00:01+00:00", bound)
	})

	t.Run("garbage cursor surfaces an error", func(t *testing.T) {
		z := newTestDriver(t, nil, "")
		rctx := types.RequestContext{"organization_id": "10"}
		z.state.SetCursor("invoices", rctx.Signature(), "last_modified_time", "not-a-date")
		_, err := z.resolveBound(findStream(t, z, "invoices"), rctx)
		assert.Error(t, err)
	})
}

func TestReportWindow(t *testing.T) {
	t.Run("window origin from reports start date", func(t *testing.T) {
		z := newTestDriver(t, &Config{StartDate: "2020-01-01", ReportsStartDate: "2023-02-05"}, "")
		z.tracker.now = func() time.Time { return time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC) }

		from, to, err := z.reportWindow(findStream(t, z, "profit_and_loss"), types.RequestContext{"organization_id": "10"})
		require.NoError(t, err)
		assert.Equal(t, "2023-02-05", from)
		assert.Equal(t, "2026-08-31", to)
	})

	t.Run("window closes on last day of february", func(t *testing.T) {
		z := newTestDriver(t, &Config{StartDate: "2020-01-01"}, "")
		z.tracker.now = func() time.Time { return time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC) }

		from, to, err := z.reportWindow(findStream(t, z, "profit_and_loss"), types.RequestContext{"organization_id": "10"})
		require.NoError(t, err)
		assert.Equal(t, "2020-01-01", from)
		assert.Equal(t, "2024-02-29", to)
	})

	t.Run("missing origin is an error", func(t *testing.T) {
		z := newTestDriver(t, nil, "")
		z.config.StartDate = ""
		_, _, err := z.reportWindow(findStream(t, z, "profit_and_loss"), types.RequestContext{})
		assert.Error(t, err)
	})
}
