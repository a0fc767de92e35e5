// Package integrations provides the shared HTTP plumbing for API clients.
//
// # Overview
//
// [Client] wraps an *http.Client with default headers and JSON decoding.
// Service-specific clients embed it; see the [github] subpackage.
//
// # Errors
//
// Any response other than 200 OK becomes a [*StatusError] that keeps the
// status code, headers and raw body. It unwraps to [ErrNotFound] for 404
// and [ErrNetwork] otherwise, so callers can branch with errors.Is or
// inspect details with errors.As. Transport failures wrap [ErrNetwork]
// together with the underlying error, which preserves context.Canceled.
//
// Requests are never retried and responses are never cached.
//
// # Observability
//
// Every request is reported to [observability.HTTP] hooks.
package integrations
