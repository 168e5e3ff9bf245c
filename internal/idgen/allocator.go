package idgen

import "context"

// Allocator hands out "<Entity><n>" identifiers from a per-entity counter.
// Concurrent calls for the same entity never return the same identifier.
type Allocator interface {
	// Next 取得下一個 ID
	Next(ctx context.Context, entity string) (string, error)
	// NextN 一次保留 n 個連續 ID
	NextN(ctx context.Context, entity string, n int) ([]string, error)
	// WarmUp 將計數器提高到 floor, 不會調降
	WarmUp(ctx context.Context, entity string, floor int64) error
}

// HighWaterMarks reports the largest n among stored "<entity><n>" identifiers, 0 when there are none.
type HighWaterMarks interface {
	MaxIDSuffix(ctx context.Context, entity string) (int64, error)
}

// Seed raises each entity counter to the highest identifier already persisted.
func Seed(ctx context.Context, a Allocator, marks HighWaterMarks, entities ...string) error {
	for _, entity := range entities {
		floor, err := marks.MaxIDSuffix(ctx, entity)
		if err != nil {
			return err
		}
		if err := a.WarmUp(ctx, entity, floor); err != nil {
			return err
		}
	}
	return nil
}
