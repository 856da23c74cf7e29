package archive

import (
	"context"

	"rideshare/internal/registry"
)

// Archiver receives rides after the lifecycle controller closes them.
// The live registry never reads archived rides back; the archive is a
// write-only sink for offline analytics.
type Archiver interface {
	ArchiveRide(ctx context.Context, ride registry.RideSnapshot) error
}

// Noop discards archived rides. Used when archiving is disabled.
type Noop struct{}

func (Noop) ArchiveRide(ctx context.Context, ride registry.RideSnapshot) error {
	return nil
}

var _ Archiver = Noop{}
