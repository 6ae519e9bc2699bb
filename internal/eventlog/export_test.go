package eventlog

import (
	"context"

	"github.com/osse101/reelslot/internal/event"
)

// HandleEvent exposes the bus handler to tests
func HandleEvent(s Service, ctx context.Context, evt event.Event) error {
	return s.(*service).handleEvent(ctx, evt)
}
