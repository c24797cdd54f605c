package engine

import "fmt"

// ImageLoadError is the one failure the engine surfaces: an image of the
// active set could not be loaded or decoded.
type ImageLoadError struct {
	Title string
	Ref   string
	Err   error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("failed to load image for %q (%s): %v", e.Title, e.Ref, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }
