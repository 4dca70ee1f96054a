package core

import "time"

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) *Time {
	interval := cfg.EventPollDelay
	if interval <= 0 {
		interval = time.Nanosecond
	}

	return &Time{
		eventPollDelay: cfg.EventPollDelay,
		eventTicker:    time.NewTicker(interval),
	}
}

// Time contains all the time services and tickers
type Time struct {
	eventPollDelay time.Duration
	eventTicker    *time.Ticker
}

// EventPollDelay gets the configured delay between event polls
func (t *Time) EventPollDelay() time.Duration {
	return t.eventPollDelay
}

// EventTicker gets the initialized event ticker for the event loop
func (t *Time) EventTicker() *time.Ticker {
	return t.eventTicker
}

// Stop stops all tickers
func (t *Time) Stop() {
	t.eventTicker.Stop()
}
