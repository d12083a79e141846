package ports

import (
	"context"

	"go.trai.ch/fresh/internal/core/domain"
)

// TimestampOracle reads modification times of declared paths.
//
//go:generate mockgen -source=timestamp_oracle.go -destination=mocks/mock_timestamp_oracle.go -package=mocks
type TimestampOracle interface {
	// Stamp returns the modification time of path, resolved against root.
	// A missing path yields an absent timestamp; a path that exists but is not
	// a regular file yields domain.ErrNotAFile.
	Stamp(root string, path domain.InternedString) (domain.Timestamp, error)

	// StampAll stamps every path and returns the results in the same order.
	StampAll(ctx context.Context, root string, paths []domain.InternedString) ([]domain.Timestamp, error)
}
