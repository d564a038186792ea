package ionap

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	dialect          Dialect
	timeout          time.Duration
	statusCheckDelay time.Duration
	requestLogger    RequestLogger
	requestHeaders   map[string]string
}

func newClientOptions() *Options {
	return &Options{
		dialect:          DialectV3,
		statusCheckDelay: 2 * time.Second,
		requestLogger:    &NoopLogger{},
		requestHeaders:   map[string]string{},
	}
}

// WithDialect selects the API generation the client speaks. The default
// is [DialectV3].
func WithDialect(d Dialect) Option {
	return func(o *Options) {
		if d.valid() {
			o.dialect = d
		}
	}
}

// WithTimeout bounds each request/response cycle. Zero keeps the
// underlying HTTP client default; there is no retry on timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

// WithStatusCheckDelay sets the advisory wait between a submit and the
// follow-up status fetch performed by [Client.SubmitAndCheck]. Zero
// disables the wait.
func WithStatusCheckDelay(delay time.Duration) Option {
	return func(o *Options) {
		if delay >= 0 {
			o.statusCheckDelay = delay
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithRequestHeader adds a header to every request. Content-Type,
// Accept and Authorization are owned by the client per call and cannot
// be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders[header] = value
	}
}

func (o *Options) Validate() error {
	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if !o.dialect.valid() {
		return errors.New("dialect must name an API generation")
	}

	if o.timeout < 0 {
		return errors.New("timeout must be non-negative")
	}

	if o.timeout > 5*time.Minute {
		return fmt.Errorf("timeout must not exceed %v", 5*time.Minute)
	}

	if o.statusCheckDelay < 0 {
		return errors.New("statusCheckDelay must be non-negative")
	}

	if o.statusCheckDelay > time.Minute {
		return fmt.Errorf("statusCheckDelay must not exceed %v", time.Minute)
	}

	return nil
}
