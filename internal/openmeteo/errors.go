package openmeteo

import "fmt"

// FetchErrorKind distinguishes the failure modes of a forecast fetch.
type FetchErrorKind int

const (
	// FetchTimeout means the request did not complete within the client timeout.
	FetchTimeout FetchErrorKind = iota
	// FetchStatus means the API answered with a non-200 status.
	FetchStatus
	// FetchParse means the response body could not be decoded.
	FetchParse
)

// FetchError is the single error type surfaced by a failed forecast fetch.
// Field-level defects never produce a FetchError; they default to zero at
// the point of extraction.
type FetchError struct {
	Kind   FetchErrorKind
	Source string // "marine" or "weather"
	Status int    // set for FetchStatus
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchTimeout:
		return fmt.Sprintf("%s request timed out", e.Source)
	case FetchStatus:
		return fmt.Sprintf("%s API returned status %d", e.Source, e.Status)
	default:
		return fmt.Sprintf("parsing %s response: %v", e.Source, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
