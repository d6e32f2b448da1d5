package driver

import (
	"fmt"
	"strconv"

	"github.com/openledgerio/booksync/constants"
	"github.com/openledgerio/booksync/types"
	"github.com/openledgerio/booksync/utils"
)

// extraRetriableStatuses are retried on top of the 5xx range; 429 is the
// per-minute throttle and 400 is returned transiently by some report
// endpoints under load.
var extraRetriableStatuses = types.NewSet(429, 400)

// RetriableError marks a response worth retrying with backoff.
type RetriableError struct {
	StatusCode int
	Message    string
}

func (e *RetriableError) Error() string {
	return fmt.Sprintf("retriable api error (status %d): %s", e.StatusCode, e.Message)
}

// FatalError aborts the sync immediately; retrying cannot help.
type FatalError struct {
	StatusCode int
	Message    string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal api error (status %d): %s", e.StatusCode, e.Message)
}

// QuotaError signals the daily request quota is spent. It is handled outside
// the retry loop; the caller sleeps to the next UTC day and reissues.
type QuotaError struct {
	Remaining int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("daily api quota exhausted (remaining %d)", e.Remaining)
}

// classify maps a raw response onto the error taxonomy. A nil return means
// the response body is safe to parse; an empty 200 body is also nil and is
// treated as a page with zero records.
func classify(resp *Response) error {
	if remaining := resp.Header.Get(constants.HeaderRateLimitRemaining); remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil && n <= 0 {
			return &QuotaError{Remaining: n}
		}
	}

	switch {
	case extraRetriableStatuses.Exists(resp.StatusCode) || resp.StatusCode >= 500:
		return &RetriableError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}
	case resp.StatusCode >= 400:
		return &FatalError{StatusCode: resp.StatusCode, Message: errorMessage(resp)}
	case resp.StatusCode == 200 && len(resp.Body) > 0 && !utils.IsJSONCompatible(resp.Body):
		return &RetriableError{StatusCode: resp.StatusCode, Message: "received a non-json response"}
	}
	return nil
}

func errorMessage(resp *Response) string {
	body := string(resp.Body)
	if len(body) > 512 {
		body = body[:512]
	}
	return body
}
