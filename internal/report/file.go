package report

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/AquaponicsSim_Go/internal/logger"
	"github.com/osse101/AquaponicsSim_Go/internal/simulation"
)

// FileExporter writes the batch as JSON to a path
type FileExporter struct {
	path string
}

// NewFileExporter creates an exporter for path
func NewFileExporter(path string) *FileExporter {
	return &FileExporter{path: path}
}

// Export implements Exporter
func (f *FileExporter) Export(ctx context.Context, batch *simulation.Batch) error {
	data, err := Marshal(batch)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path, data, FilePermissions); err != nil {
		return fmt.Errorf(ErrMsgWriteFileFmt, f.path, err)
	}
	logger.FromContext(ctx).Info(LogMsgReportWritten, "path", f.path, "bytes", len(data))
	return nil
}
