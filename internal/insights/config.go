// internal/insights/config.go
package insights

import "time"

// Config carries the generation settings shared by every provider.
type Config struct {
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}
