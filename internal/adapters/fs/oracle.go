package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/fresh/internal/core/domain"
	"go.trai.ch/fresh/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.TimestampOracle = (*Oracle)(nil)

// statConcurrency bounds the number of concurrent stat calls in StampAll.
const statConcurrency = 16

// Oracle implements ports.TimestampOracle using os.Stat.
type Oracle struct{}

// NewOracle creates a new Oracle.
func NewOracle() *Oracle {
	return &Oracle{}
}

// Stamp returns the modification time of path. Symlinks are followed.
func (o *Oracle) Stamp(root string, path domain.InternedString) (domain.Timestamp, error) {
	info, err := os.Stat(Resolve(root, path.String()))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.Absent(), nil
		}
		return domain.Absent(), zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path.String())
	}

	if !info.Mode().IsRegular() {
		return domain.Absent(), zerr.With(zerr.Wrap(domain.ErrNotAFile, "unexpected file type"), "path", path.String())
	}

	return domain.StampAt(info.ModTime()), nil
}

// StampAll stamps paths concurrently. Results keep the order of paths.
func (o *Oracle) StampAll(ctx context.Context, root string, paths []domain.InternedString) ([]domain.Timestamp, error) {
	stamps := make([]domain.Timestamp, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(statConcurrency)

	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ts, err := o.Stamp(root, p)
			if err != nil {
				return err
			}
			stamps[i] = ts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stamps, nil
}

// Resolve joins a declared path onto root unless it is already absolute.
func Resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
