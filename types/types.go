package types

// FetchStatus represents the state of the one-shot transfers fetch
type FetchStatus string

const (
	// Loading - The request has been issued (or is about to be) and no response has arrived
	Loading FetchStatus = "LOADING"

	// Error - The request failed; the cause is logged but never shown
	Error FetchStatus = "ERROR"

	// Ready - The transfers were fetched and are available for display
	Ready FetchStatus = "READY"
)
