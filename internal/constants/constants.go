package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network settings.
const (
	// APIPrefix is prepended to every resource path.
	APIPrefix = "/api/v2"

	// DefaultHTTPTimeout is the default stall timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second

	// ReadChunkSize is the buffer size for accumulating response bodies.
	ReadChunkSize = 32 * 1024
)

// Retry limits. The client itself never retries; these bound the opt-in
// transport retry knob.
const (
	// DefaultRetryWaitMin is the minimum wait time between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between opt-in retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination sizes used by the CLI.
const (
	// StandardPageSize is the default number of results per page.
	StandardPageSize = 50

	// MaxPageSize is the largest page the API serves.
	MaxPageSize = 100
)
