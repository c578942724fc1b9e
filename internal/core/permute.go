package core

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/permute/internal/logging"
)

// Request describes one permute run.
type Request struct {
	InputPath  string
	OutputPath string
	FileType   string
	Header     bool
	Delimiter  string
	Seed       int64
}

// Result summarizes a successful run.
type Result struct {
	InputPath  string
	OutputPath string
	Rows       int
	Columns    int
	Duration   time.Duration
}

// Permute loads req.InputPath, shuffles its rows with req.Seed and writes the
// result to req.OutputPath.
//
// Every failure is logged at error level and returned as an *Error. Nothing is
// written when the input is missing or cannot be loaded. A panic during the
// run is recovered and returned as a KindUnexpected error.
func Permute(ctx context.Context, req Request) (res *Result, err error) {
	start := time.Now()
	logger := logging.WithFields(ctx,
		"input", req.InputPath,
		"output", req.OutputPath,
		"file_type", req.FileType,
	)

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &Error{Kind: KindUnexpected, Path: req.InputPath, Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			logger.Error(err.Error(),
				"kind", KindOf(err).String(),
				"code", MapError(err).Code,
			)
		}
	}()

	table, err := Load(ctx, req.InputPath, LoadOptions{
		FileType:  req.FileType,
		Header:    req.Header,
		Delimiter: req.Delimiter,
	})
	if err != nil {
		return nil, err
	}

	shuffled := Shuffle(table, req.Seed)
	logger.Debug("rows shuffled", "rows", shuffled.Len(), "seed", req.Seed)

	if err := Write(ctx, shuffled, req.OutputPath, WriteOptions{
		FileType:  req.FileType,
		Delimiter: req.Delimiter,
	}); err != nil {
		return nil, err
	}

	res = &Result{
		InputPath:  req.InputPath,
		OutputPath: req.OutputPath,
		Rows:       shuffled.Len(),
		Columns:    shuffled.Width(),
		Duration:   time.Since(start),
	}

	logger.Info(fmt.Sprintf("successfully permuted data from %s to %s", req.InputPath, req.OutputPath),
		"rows", res.Rows,
		"columns", res.Columns,
		"duration_ms", res.Duration.Milliseconds(),
	)

	return res, nil
}
