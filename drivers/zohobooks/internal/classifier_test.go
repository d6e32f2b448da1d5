package driver

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(status int, body string, headers map[string]string) *Response {
	h := http.Header{}
	for k, v := range headers {
		h.Set(k, v)
	}
	return &Response{StatusCode: status, Header: h, Body: []byte(body)}
}

func TestClassify(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		assert.NoError(t, classify(response(200, `{"invoices":[]}`, nil)))
	})

	t.Run("empty success body is not an error", func(t *testing.T) {
		assert.NoError(t, classify(response(200, ``, nil)))
	})

	t.Run("server errors are retriable", func(t *testing.T) {
		var retriable *RetriableError
		err := classify(response(503, "unavailable", nil))
		require.True(t, errors.As(err, &retriable))
		assert.Equal(t, 503, retriable.StatusCode)
	})

	t.Run("throttle status is retriable", func(t *testing.T) {
		var retriable *RetriableError
		assert.True(t, errors.As(classify(response(429, "", nil)), &retriable))
	})

	t.Run("bad request is retriable", func(t *testing.T) {
		var retriable *RetriableError
		assert.True(t, errors.As(classify(response(400, "", nil)), &retriable))
	})

	t.Run("other client errors are fatal", func(t *testing.T) {
		var fatal *FatalError
		err := classify(response(404, "not found", nil))
		require.True(t, errors.As(err, &fatal))
		assert.Equal(t, 404, fatal.StatusCode)
	})

	t.Run("non-json success body is retriable", func(t *testing.T) {
		var retriable *RetriableError
		assert.True(t, errors.As(classify(response(200, "<html>maintenance</html>", nil)), &retriable))
	})

	t.Run("spent quota wins over status", func(t *testing.T) {
		var quota *QuotaError
		err := classify(response(200, `{}`, map[string]string{
			"X-Rate-Limit-Remaining": "0",
			"X-Rate-Limit-Limit":     "5000",
		}))
		require.True(t, errors.As(err, &quota))
		assert.Equal(t, 0, quota.Remaining)
	})

	t.Run("positive quota does not trip", func(t *testing.T) {
		assert.NoError(t, classify(response(200, `{}`, map[string]string{
			"X-Rate-Limit-Remaining": "120",
		})))
	})
}
