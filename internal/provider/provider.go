// Package provider holds what the generation backends share.
package provider

import "errors"

// ErrEmptyResponse is returned when a backend answers without usable content.
var ErrEmptyResponse = errors.New("provider: empty response")

// Content types produced by the generation backends.
const (
	ContentTypePNG = "image/png"
	ContentTypeMP3 = "audio/mpeg"
)
