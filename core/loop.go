package core

import "context"

// PollUntilClosed polls window events on every tick until the window
// asks to close or ctx is done.
func PollUntilClosed(ctx context.Context, w Window, t *Time) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.EventTicker().C:
			w.PollEvents()
			if w.ShouldClose() {
				return
			}
		}
	}
}
