package export

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/texel-architect/texel_architect/pkg/debuglog"
	"github.com/texel-architect/texel_architect/pkg/model"
)

// Default file names written by ExportAll.
const (
	GridPNGName    = "texel-grid.png"
	GridSVGName    = "texel-grid.svg"
	ReportFileName = "texel-report.md"
)

// ExportAll writes the PNG and SVG previews and a Markdown report into dir
// in parallel. It returns the written paths in a fixed order.
func ExportAll(ctx context.Context, dir string, snap model.Snapshot, previewPx float64) ([]string, error) {
	paths := []string{
		filepath.Join(dir, GridPNGName),
		filepath.Join(dir, GridSVGName),
		filepath.Join(dir, ReportFileName),
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return SaveSnapshot(SnapshotOptions{Path: p, Snapshot: snap, PreviewPx: previewPx})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	debuglog.Logger().Info("exported snapshot", "dir", dir, "files", len(paths))
	return paths, nil
}
