// Package export writes the grid preview and calculation reports to files.
//
// The grid preview is rasterized with git.sr.ht/~sbinet/gg and encoded as
// PNG, WebP or TGA, or drawn as SVG with github.com/ajstarks/svgo. Reports
// render to JSON, YAML or Markdown.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/texel-architect/texel_architect/pkg/grid"
	"github.com/texel-architect/texel_architect/pkg/model"
)

// Format identifies an output file type.
type Format string

const (
	FormatPNG      Format = "png"
	FormatWebP     Format = "webp"
	FormatTGA      Format = "tga"
	FormatSVG      Format = "svg"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "md"
)

// ErrUnknownFormat is returned for file types ta cannot write.
var ErrUnknownFormat = errors.New("unknown export format")

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	case "tga":
		return FormatTGA, nil
	case "svg":
		return FormatSVG, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q (want .png, .webp, .tga, .svg, .json, .yaml or .md)", ErrUnknownFormat, filepath.Ext(path))
}

// SnapshotOptions configures a single export.
type SnapshotOptions struct {
	Path      string
	Format    Format // optional; inferred from Path when empty
	Snapshot  model.Snapshot
	PreviewPx float64
}

// Write renders the snapshot in format f to w.
func Write(w io.Writer, f Format, snap model.Snapshot, previewPx float64) error {
	switch f {
	case FormatPNG:
		return RenderPNG(w, snap, previewPx)
	case FormatWebP:
		return RenderWebP(w, snap, previewPx)
	case FormatTGA:
		return RenderTGA(w, snap, previewPx)
	case FormatSVG:
		return RenderSVG(w, snap, previewPx)
	case FormatJSON:
		return NewReport(snap, previewPx).WriteJSON(w)
	case FormatYAML:
		return NewReport(snap, previewPx).WriteYAML(w)
	case FormatMarkdown:
		return NewReport(snap, previewPx).WriteMarkdown(w)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// SaveSnapshot renders to a buffer first so a failed render never leaves a
// truncated file behind.
func SaveSnapshot(opts SnapshotOptions) error {
	f := opts.Format
	if f == "" {
		var err error
		if f, err = FormatFromPath(opts.Path); err != nil {
			return err
		}
	}
	opts.PreviewPx = grid.ClampPreview(opts.PreviewPx)

	var buf bytes.Buffer
	if err := Write(&buf, f, opts.Snapshot, opts.PreviewPx); err != nil {
		return fmt.Errorf("render %s: %w", f, err)
	}
	if dir := filepath.Dir(opts.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(opts.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.Path, err)
	}
	return nil
}
