package retry

import (
	"time"
)

// Do runs fn, retrying up to retries times on error with an exponentially
// doubling delay between attempts.
func Do(retries int, initialDelay time.Duration, fn func() error) error {
	delay := initialDelay
	var err error
	for attempt := 0; ; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt >= retries {
			return err
		}
		time.Sleep(delay)
		delay *= 2
	}
}
