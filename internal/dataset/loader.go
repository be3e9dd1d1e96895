package dataset

import (
	"context"

	"slviewer/adapters/excel"
	"slviewer/domain/queue"
	"slviewer/internal/config"
	"slviewer/internal/errors"
	"slviewer/internal/logging"

	"go.uber.org/zap"
)

// Loader reads the queue table from disk on every call. It keeps no state
// between calls.
type Loader struct {
	dir    string
	file   string
	logger *zap.Logger
}

// NewLoader creates a loader for the configured data location
func NewLoader(cfg config.DataConfig, logger *zap.Logger) *Loader {
	dir := cfg.Dir
	if dir == "" {
		dir = config.DefaultDataDir
	}
	return &Loader{
		dir:    dir,
		file:   cfg.File,
		logger: logging.OrNop(logger),
	}
}

// Load locates and parses the data file. Errors are returned unchanged so
// callers can tell a missing file from a broken one.
func (l *Loader) Load(ctx context.Context) (*queue.Table, string, error) {
	path, err := Locate(l.dir, l.file)
	if err != nil {
		return nil, "", err
	}

	table, err := excel.NewDataReader(path, l.logger).ReadTable(ctx)
	if err != nil {
		return nil, path, errors.Wrapf(err, "failed to load %s", path)
	}
	return table, path, nil
}

// LoadTable is Load with the sample fallback applied: any failure is logged
// and answered with SampleTable. It never returns a nil table.
func (l *Loader) LoadTable(ctx context.Context) (*queue.Table, queue.Source) {
	table, path, err := l.Load(ctx)
	if err == nil {
		l.logger.Debug("queue table loaded",
			zap.String("path", path),
			zap.Int("rows", table.Len()))
		return table, queue.Source{Kind: queue.SourceFile, Path: path}
	}

	if errors.HasCode(err, errors.CodeNoDataFile) {
		l.logger.Info("no data file found, using sample data", zap.String("dir", l.dir), zap.Error(err))
	} else {
		l.logger.Warn("failed to read data file, using sample data", zap.String("path", path), zap.Error(err))
	}
	return queue.SampleTable(), queue.Source{Kind: queue.SourceSample, Reason: err.Error()}
}
