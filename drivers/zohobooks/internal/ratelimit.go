package driver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/openledgerio/booksync/constants"
	"github.com/openledgerio/booksync/utils/logger"
	"golang.org/x/time/rate"
)

// rateTracker spaces requests out and watches the daily quota headers. The
// clock and sleep functions are injectable so tests run instantly.
type rateTracker struct {
	cooldown time.Duration
	// pacer throttles streams whose endpoints bill more than one request
	// worth of quota per call.
	pacer *rate.Limiter

	alerted bool
	sleep   func(time.Duration)
	now     func() time.Time
}

func newRateTracker(cooldown time.Duration) *rateTracker {
	return &rateTracker{
		cooldown: cooldown,
		pacer:    rate.NewLimiter(rate.Every(constants.PacingInterval), 1),
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

// Observe inspects the quota headers of a completed request. Whenever both
// headers are present a fixed cooldown is applied so requests spread across
// the minute window, and a one-time alert fires once the remaining daily
// quota drops below the threshold.
func (r *rateTracker) Observe(header http.Header) {
	limitRaw := header.Get(constants.HeaderRateLimitLimit)
	remainingRaw := header.Get(constants.HeaderRateLimitRemaining)
	if limitRaw == "" || remainingRaw == "" {
		return
	}
	r.sleep(r.cooldown)

	remaining, err := strconv.Atoi(remainingRaw)
	if err != nil {
		return
	}
	if remaining < constants.RateLimitAlertThreshold && !r.alerted {
		logger.Warnf("daily api quota is almost exhausted (%d requests remaining)", remaining)
		r.alerted = true
	}
}

// Pace blocks until the paced-endpoint interval has elapsed since the last
// paced request.
func (r *rateTracker) Pace() {
	delay := r.pacer.Reserve().Delay()
	if delay > 0 {
		r.sleep(delay)
	}
}

// SleepUntilNextDay blocks until the daily quota resets at UTC midnight. One
// extra second covers clock rounding on the server side.
func (r *rateTracker) SleepUntilNextDay() {
	now := r.now().UTC()
	next := now.AddDate(0, 0, 1).Truncate(24 * time.Hour)
	wait := next.Sub(now) + time.Second
	logger.Infof("daily api quota exhausted, sleeping %s until the next UTC day", wait)
	r.sleep(wait)
}
