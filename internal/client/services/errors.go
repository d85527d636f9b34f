package services

import "errors"

// ErrStaleRender is returned by RenderAll when a newer render started before
// this one finished.
var ErrStaleRender = errors.New("render superseded by a newer one")
