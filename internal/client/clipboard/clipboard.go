// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("no clipboard utility available")

// seams for tests
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// System is the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the Windows API).
type System struct{}

func New() *System {
	return &System{}
}

func (*System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if unsupported() {
		return ErrUnsupported
	}
	return writeAll(text)
}
