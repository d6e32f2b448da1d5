package driver

import (
	"fmt"
	"time"

	"github.com/openledgerio/booksync/types"
	"github.com/openledgerio/booksync/utils/typeutils"
)

// resolveBound computes the last_modified_time lower bound for an
// incremental list request. The stored cursor wins over the configured start
// date; one second is added so the record that produced the cursor is not
// re-read, and sub-second precision is dropped because the API rejects it.
// An empty return means the stream syncs unbounded.
func (z *ZohoBooks) resolveBound(stream *types.Stream, context types.RequestContext) (string, error) {
	if stream.ReplicationKey == "" {
		return "", nil
	}
	signature := context.Signature()
	if stream.IgnoreParentCursor {
		signature = ""
	}

	value := z.state.GetCursor(stream.Name, signature, stream.ReplicationKey)
	if value == "" {
		value = z.config.StartDate
	}
	if value == "" {
		return "", nil
	}

	ts, err := typeutils.ParseTimestamp(value)
	if err != nil {
		return "", fmt.Errorf("failed to parse cursor %q for stream %s: %s", value, stream.Name, err)
	}
	return typeutils.FormatTimestamp(ts.Add(time.Second)), nil
}

// reportWindow computes the date window report endpoints are queried with.
// Reports have no modification cursor; every sync re-reads from the window
// origin through the end of the current month.
func (z *ZohoBooks) reportWindow(stream *types.Stream, context types.RequestContext) (from, to string, err error) {
	origin := z.config.ReportsStartDate
	if origin == "" {
		signature := context.Signature()
		if stream.IgnoreParentCursor {
			signature = ""
		}
		origin = z.state.GetCursor(stream.Name, signature, stream.ReplicationKey)
	}
	if origin == "" {
		origin = z.config.StartDate
	}
	if origin == "" {
		return "", "", fmt.Errorf("stream %s requires start_date or reports_start_date", stream.Name)
	}

	ts, err := typeutils.ParseTimestamp(origin)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse report window origin %q: %s", origin, err)
	}

	now := z.tracker.now().UTC()
	endOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1)
	return ts.Format("2006-01-02"), endOfMonth.Format("2006-01-02"), nil
}
