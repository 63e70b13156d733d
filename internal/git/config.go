package git

import "time"

type Config struct {
	Timeout       time.Duration
	MaxLogEntries int
}

const defaultMaxLogEntries = 100

func (c Config) maxLogEntries() int {
	if c.MaxLogEntries <= 0 {
		return defaultMaxLogEntries
	}
	return c.MaxLogEntries
}
