package driver

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/openledgerio/booksync/constants"
	"github.com/openledgerio/booksync/utils/logger"
)

// request issues one logical API call. Retriable failures back off inside
// withRetry; quota exhaustion is handled here so the day-long sleep never
// counts against the retry budget, the call is simply reissued with
// identical parameters afterwards.
func (z *ZohoBooks) request(ctx context.Context, path string, params url.Values, paced bool) (*Response, error) {
	for {
		resp, err := z.withRetry(ctx, path, params, paced)
		if err != nil {
			var quota *QuotaError
			if errors.As(err, &quota) {
				z.tracker.SleepUntilNextDay()
				continue
			}
			return nil, err
		}
		return resp, nil
	}
}

// retryPolicy holds the backoff shape; tests shrink the intervals.
type retryPolicy struct {
	initial     time.Duration
	multiplier  float64
	maxInterval time.Duration
	attempts    uint
}

func defaultRetryPolicy(attempts int) retryPolicy {
	return retryPolicy{
		initial:     constants.DefaultBackoffInitial,
		multiplier:  constants.DefaultBackoffMultiplier,
		maxInterval: constants.DefaultBackoffMax,
		attempts:    uint(attempts),
	}
}

func (z *ZohoBooks) withRetry(ctx context.Context, path string, params url.Values, paced bool) (*Response, error) {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = z.retry.initial
	expo.Multiplier = z.retry.multiplier
	expo.MaxInterval = z.retry.maxInterval
	expo.RandomizationFactor = 0

	operation := func() (*Response, error) {
		if paced {
			z.tracker.Pace()
		}
		resp, err := z.client.Get(ctx, path, params)
		if err != nil {
			// transport errors are retriable
			logger.Warnf("request to %s failed: %s", path, err)
			return nil, err
		}
		z.tracker.Observe(resp.Header)

		if cerr := classify(resp); cerr != nil {
			var retriable *RetriableError
			if errors.As(cerr, &retriable) {
				logger.Warnf("retrying %s: %s", path, cerr)
				return nil, cerr
			}
			// fatal and quota errors must not be retried here
			return nil, backoff.Permanent(cerr)
		}
		return resp, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(expo),
		backoff.WithMaxTries(z.retry.attempts),
	)
}
