// Package constant defines immutable application-level identifiers and build metadata.
package constant

const (
	// Kinometa is the canonical application identifier used for filesystem paths and CLI branding.
	Kinometa = "kinometa"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every request made to a metadata source.
	UserAgent = "kinometa/" + Version + " (+https://github.com/kinometa/kinometa)"

	// BrowserUserAgent is used for sources that serve html pages and reject unknown clients.
	BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
