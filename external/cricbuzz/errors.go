package cricbuzz

import crerr "github.com/cockroachdb/errors"

var (
	// ErrMissingAPIKey means no credential is configured; no network call is
	// attempted and callers should treat ingestion as disabled.
	ErrMissingAPIKey = crerr.New("cricbuzz api key is not configured")

	// ErrForbidden means the provider rejected the configured key. This is a
	// configuration problem, never retried.
	ErrForbidden = crerr.New("cricbuzz rejected the configured api key")

	// ErrThrottled means the bounded retry budget was spent on rate-limit
	// responses. Pipelines surface it as a warning and continue with partial
	// data.
	ErrThrottled = crerr.New("cricbuzz rate limit exhausted")

	// ErrUnrecognizedShape means a payload matched none of the known layouts
	// for the concept being extracted. The affected record is skipped.
	ErrUnrecognizedShape = crerr.New("unrecognized cricbuzz payload shape")
)
