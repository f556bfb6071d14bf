package cookie

import (
	"time"

	"github.com/ryanbekhen/cookie/log"
)

// Config represents parser configuration options.
type Config struct {
	// Now returns the current instant. It stamps the creation time of parsed
	// cookies, which Max-Age is relative to, and is used by Cookie.Expired.
	//
	// Optional. Default: time.Now
	Now func() time.Time

	// Logger receives debug events about rejected headers.
	//
	// Optional. Default: nil (silent)
	Logger log.ILogger
}

// DefaultConfig returns the default parser configuration:
// - Now: time.Now
// - Logger: nil
func DefaultConfig() Config {
	return Config{
		Now:    time.Now,
		Logger: nil,
	}
}
