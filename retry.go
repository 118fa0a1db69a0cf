package transmission

import (
	"context"

	"github.com/cenkalti/backoff/v3"
)

// retryWithBackoff runs op up to MaxRetries+1 times with exponential backoff.
// Only transient failures are retried; a session conflict drops the cached id
// so the next attempt performs a fresh handshake.
func (c *Client) retryWithBackoff(ctx context.Context, method string, op func() error) error {
	cfg := c.snapshot()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.RetryBackoff
	b.MaxElapsedTime = 0

	attempt := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !IsRetryableError(err) {
			return backoff.Permanent(err)
		}
		if IsSessionConflict(err) {
			c.session.invalidate()
		}
		c.log.Debugf("%s failed, retrying: %v", method, err)
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(cfg.MaxRetries)), ctx)
	return backoff.Retry(attempt, policy)
}
