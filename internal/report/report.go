// Package report renders finished simulation batches: a readable summary
// for the terminal and JSON documents for a file or an S3 bucket.
package report

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/AquaponicsSim_Go/internal/simulation"
)

// Exporter delivers a finished batch somewhere
type Exporter interface {
	Export(ctx context.Context, batch *simulation.Batch) error
}

// ExportAll runs every exporter concurrently and returns the first error
func ExportAll(ctx context.Context, batch *simulation.Batch, exporters ...Exporter) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, e := range exporters {
		g.Go(func() error {
			return e.Export(ctx, batch)
		})
	}
	return g.Wait()
}

// Marshal encodes a batch as indented JSON
func Marshal(batch *simulation.Batch) ([]byte, error) {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMarshalBatchFmt, err)
	}
	return data, nil
}
