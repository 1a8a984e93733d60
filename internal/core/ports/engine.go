package ports

import "context"

type SnapshotEngine interface {
	Run(ctx context.Context) error
}
