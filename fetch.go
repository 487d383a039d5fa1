package lectio

import "context"

// SourceFetcher represents a service for retrieving a source document from
// a remote location.
type SourceFetcher interface {
	// Fetch retrieves the document at url and returns its body.
	Fetch(ctx context.Context, url string) (string, error)
}

// HostLimiter represents a politeness limit on outgoing requests, scoped
// per host.
type HostLimiter interface {
	// Wait blocks until the limit allows a request to host. Returns an
	// error if ctx ends first.
	Wait(ctx context.Context, host string) error
}
