// Package ionap provides an HTTP client for the ion-AP access point API.
//
// The client wraps [github.com/go-resty/resty/v2] and exposes the
// transaction operations of the access point: submitting business
// documents, listing and inspecting outgoing and incoming transactions,
// and retrieving per-transaction artifacts such as the document body,
// delivery receipt, error list and log list.
//
// # Basic Usage
//
//	creds, err := config.Resolve("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c := ionap.New(creds,
//	    ionap.WithDialect(ionap.DialectV3),
//	)
//
//	ref, err := c.Submit(ctx, document, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ref.ID, ref.State)
//
// # API Generations
//
// The remote API has gone through several incompatible generations that
// differ in path shapes, pagination parameters and response envelopes.
// The client is parameterized by a [Dialect] value describing one
// generation; [DialectV3] is the default. All operations behave the same
// regardless of the active dialect, and a sub-resource kind the dialect
// does not expose fails with [UnsupportedOperationError] before any
// network call is made.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the
// assembled options are validated on first use.
//
// # Errors
//
// Operations return typed errors: [AuthError] when credentials are
// missing or still the placeholder (raised before any network I/O),
// [RemoteError] for any response status outside the 2xx range, and
// [UnsupportedOperationError] for sub-resource kinds the active dialect
// does not support. A structured decode failure is never an error; the
// raw response text is substituted transparently (see [Payload]).
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. Request diagnostics never contain the raw API key; the
// authorization header is redacted to a fixed placeholder.
package ionap
