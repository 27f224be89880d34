package db

import (
	"context"

	"stockpilot/internal/core"
)

// Snapshotter is the store's only persistence contract: load a snapshot at
// startup, save one after each mutation. Implementations must tolerate Save
// being called frequently; writes are fire-and-forget from the core's
// perspective and carry no durability guarantee.
type Snapshotter interface {
	// Load returns the last saved snapshot, or (nil, nil) when nothing has
	// been persisted yet.
	Load(ctx context.Context) (*core.Snapshot, error)
	Save(ctx context.Context, snap *core.Snapshot) error
}

// Null is a Snapshotter that persists nothing. Used when the process runs
// purely in memory.
type Null struct{}

func (Null) Load(ctx context.Context) (*core.Snapshot, error)    { return nil, nil }
func (Null) Save(ctx context.Context, snap *core.Snapshot) error { return nil }
