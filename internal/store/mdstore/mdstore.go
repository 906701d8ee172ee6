// Package mdstore persists todo items as a Markdown checklist file.
//
// Whole-file read, whole-file replace. No locking; concurrent writers
// race and the last one wins, which is fine for a local single-user CLI.
package mdstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/idilsaglam/mdtodo/internal/codec"
	"github.com/idilsaglam/mdtodo/internal/fsutil"
	"github.com/idilsaglam/mdtodo/internal/logging"
	"github.com/idilsaglam/mdtodo/internal/model"
)

// DefaultFileName is the backing file used when no path is configured.
const DefaultFileName = "TODO.md"

// Load reads and decodes the checklist at path. A missing file is an
// empty list, not an error.
func Load(ctx context.Context, path string) ([]model.Item, error) {
	logger := logging.FromContext(ctx)

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug("todo file not found, starting empty", logging.FieldPath, path)
			return []model.Item{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}

	items := codec.Decode(string(b))
	logger.Debug("loaded todo file", logging.FieldPath, path, logging.FieldItems, len(items))
	return items, nil
}

// Save encodes items and replaces the file at path.
func Save(ctx context.Context, path string, items []model.Item) error {
	if err := fsutil.WriteAtomic(ctx, path, []byte(codec.Encode(items))); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	logging.FromContext(ctx).Debug("saved todo file", logging.FieldPath, path, logging.FieldItems, len(items))
	return nil
}
