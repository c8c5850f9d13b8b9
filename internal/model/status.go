package model

// LoadState represents the preload state of a cat image
type LoadState string

const (
	// LoadStatePending means the image has not been fetched yet
	LoadStatePending LoadState = "pending"

	// LoadStateLoaded means the image bytes were fetched and decode cleanly
	LoadStateLoaded LoadState = "loaded"

	// LoadStateFailed means fetching or decoding the image failed
	LoadStateFailed LoadState = "failed"
)

// String returns the string representation of LoadState
func (ls LoadState) String() string {
	return string(ls)
}

// IsSettled returns true once the preload has finished, successfully or not
func (ls LoadState) IsSettled() bool {
	return ls == LoadStateLoaded || ls == LoadStateFailed
}

// IsUsable returns true if the image can be displayed
func (ls LoadState) IsUsable() bool {
	return ls == LoadStateLoaded
}
