package core

import (
	"context"
	"fmt"
	"os"

	"github.com/JonMunkholm/permute/internal/logging"
)

// Load reads the file at path into a table using the format named by
// opts.FileType.
//
// The path must be an existing regular file; otherwise a KindNotFound error
// is returned before any parsing happens. Parse failures and unknown formats
// are KindLoad errors.
func Load(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	if err := checkInputFile(path); err != nil {
		return nil, err
	}

	format, ok := LookupFormat(opts.FileType)
	if !ok {
		return nil, loadError(path, "", fmt.Errorf("%w %q: choose one of %v", ErrUnknownFileType, opts.FileType, FormatNames()))
	}

	t, err := format.Load(ctx, path, opts)
	if err != nil {
		return nil, loadError(path, format.Label, err)
	}

	logging.FromContext(ctx).Debug("table loaded",
		"path", path,
		"format", format.Name,
		"rows", t.Len(),
		"columns", t.Width(),
	)

	return t, nil
}

// Write serializes t to path using the format named by opts.FileType.
// A failure part way through may leave a truncated file at path.
func Write(ctx context.Context, t *Table, path string, opts WriteOptions) error {
	format, ok := LookupFormat(opts.FileType)
	if !ok {
		return writeError(path, "", fmt.Errorf("%w %q: choose one of %v", ErrUnknownFileType, opts.FileType, FormatNames()))
	}

	if err := format.Write(ctx, t, path, opts); err != nil {
		return writeError(path, format.Label, err)
	}

	logging.FromContext(ctx).Debug("table written",
		"path", path,
		"format", format.Name,
		"rows", t.Len(),
	)

	return nil
}

// checkInputFile reports a KindNotFound error unless path is a regular file.
func checkInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return &Error{Kind: KindNotFound, Path: path, Err: err}
	}
	return nil
}
