// This file implements a local preview server for an export directory.
// It serves the exported files with no-cache headers next to a generated
// index page that inlines the SVG grid and the report.

package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/texel-architect/texel_architect/pkg/debuglog"
	"github.com/texel-architect/texel_architect/pkg/model"
)

// Port range tried by StartPreview.
const (
	PreviewPortRangeStart = 9000
	PreviewPortRangeEnd   = 9100
)

// PreviewServer serves an export directory and a live index page for one
// snapshot.
type PreviewServer struct {
	dir       string
	port      int
	snap      model.Snapshot
	previewPx float64
	server    *http.Server
}

// NewPreviewServer creates a preview server for dir on port.
func NewPreviewServer(dir string, port int, snap model.Snapshot, previewPx float64) *PreviewServer {
	return &PreviewServer{
		dir:       dir,
		port:      port,
		snap:      snap,
		previewPx: previewPx,
	}
}

// Port returns the port the server listens on.
func (p *PreviewServer) Port() int { return p.port }

// URL returns the base URL of the server.
func (p *PreviewServer) URL() string {
	return fmt.Sprintf("http://localhost:%d", p.port)
}

// Handler returns the HTTP handler without starting a listener.
func (p *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(p.dir))
	mux.Handle("/", noCacheMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			p.indexHandler(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})))
	mux.Handle("/report.json", noCacheMiddleware(http.HandlerFunc(p.reportHandler)))
	mux.HandleFunc("/__preview__/status", p.statusHandler)
	return mux
}

// Start serves until the server is stopped. It returns http.ErrServerClosed
// after Stop.
func (p *PreviewServer) Start() error {
	if err := p.prepare(); err != nil {
		return err
	}
	return p.server.ListenAndServe()
}

// Serve runs the server until ctx is cancelled, then shuts it down.
func (p *PreviewServer) Serve(ctx context.Context) error {
	if err := p.prepare(); err != nil {
		return err
	}
	errChan := make(chan error, 1)
	go func() {
		errChan <- p.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		if err := p.Stop(); err != nil {
			return err
		}
		<-errChan
		return nil
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (p *PreviewServer) prepare() error {
	info, err := os.Stat(p.dir)
	if err != nil {
		return fmt.Errorf("export directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("export directory %s is not a directory", p.dir)
	}

	p.server = &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", p.port),
		Handler:           p.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	debuglog.Logger().Info("preview server starting", "url", p.URL(), "dir", p.dir)
	return nil
}

// Stop gracefully stops the server.
func (p *PreviewServer) Stop() error {
	if p.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.server.Shutdown(ctx)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Texel Architect</title>
<style>
body { background: #0f172a; color: #e2e8f0; font-family: sans-serif; margin: 2rem; }
h1 { margin-bottom: 0.25rem; }
.result { font-size: 1.5rem; color: {{.Outputs.TierColor}}; }
table { border-collapse: collapse; margin: 1rem 0; }
td { padding: 0.25rem 1rem 0.25rem 0; }
a { color: #8be9fd; }
</style>
</head>
<body>
<h1>Texel Architect</h1>
<p class="result">{{.Result}}</p>
<figure>{{.SVG}}</figure>
<table>
<tr><td>Object size</td><td>{{.ObjectSize}} cm</td></tr>
<tr><td>Texture resolution</td><td>{{.TextureSize}} px</td></tr>
<tr><td>Target density</td><td>{{.TargetDensity}} px/cm</td></tr>
<tr><td>Tier</td><td>{{.Outputs.Tier}}</td></tr>
</table>
<ul>
{{range .Files}}<li><a href="/{{.}}">{{.}}</a></li>
{{end}}<li><a href="/report.json">report.json</a></li>
</ul>
<p><small>{{.GeneratedBy}}</small></p>
</body>
</html>
`))

type indexData struct {
	Report
	SVG           template.HTML
	ObjectSize    string
	TextureSize   string
	TargetDensity string
	Files         []string
}

func (p *PreviewServer) indexHandler(w http.ResponseWriter, r *http.Request) {
	var svgBuf bytes.Buffer
	if err := RenderSVG(&svgBuf, p.snap, p.previewPx); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	report := NewReport(p.snap, p.previewPx)
	data := indexData{
		Report:        report,
		SVG:           template.HTML(inlineSVG(svgBuf.Bytes())),
		ObjectSize:    formatNumber(float64(report.Inputs.ObjectSizeCm)),
		TextureSize:   formatNumber(float64(report.Inputs.TextureSizePx)),
		TargetDensity: formatNumber(float64(report.Inputs.TargetDensity)),
		Files:         p.exportedFiles(),
	}

	var out bytes.Buffer
	if err := indexTemplate.Execute(&out, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.Copy(w, &out)
}

// inlineSVG drops the XML prolog so the document can sit inside HTML.
func inlineSVG(doc []byte) string {
	if i := bytes.Index(doc, []byte("<svg")); i > 0 {
		doc = doc[i:]
	}
	return string(doc)
}

func (p *PreviewServer) reportHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := NewReport(p.snap, p.previewPx).WriteJSON(w); err != nil {
		debuglog.Logger().Error("write report", "err", err)
	}
}

// exportedFiles lists the ExportAll outputs present in the directory.
func (p *PreviewServer) exportedFiles() []string {
	var names []string
	for _, name := range []string{GridPNGName, GridSVGName, ReportFileName} {
		if _, err := os.Stat(filepath.Join(p.dir, name)); err == nil {
			names = append(names, name)
		}
	}
	return names
}

type previewStatus struct {
	Status string   `json:"status"`
	Port   int      `json:"port"`
	Dir    string   `json:"dir"`
	Files  []string `json:"files"`
	Result string   `json:"result"`
}

func (p *PreviewServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(previewStatus{
		Status: "running",
		Port:   p.port,
		Dir:    p.dir,
		Files:  p.exportedFiles(),
		Result: p.snap.ResultLine(),
	})
}

// noCacheMiddleware adds headers to prevent browser caching.
func noCacheMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// FindAvailablePort returns the first port in [start, end] that accepts a
// listener on the loopback interface.
func FindAvailablePort(start, end int) (int, error) {
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}

// StartPreview picks a free port and serves dir until ctx is cancelled.
func StartPreview(ctx context.Context, dir string, snap model.Snapshot, previewPx float64, out io.Writer) error {
	port, err := FindAvailablePort(PreviewPortRangeStart, PreviewPortRangeEnd)
	if err != nil {
		return fmt.Errorf("could not find available port: %w", err)
	}

	server := NewPreviewServer(dir, port, snap, previewPx)
	fmt.Fprintf(out, "Preview server running at %s\n", server.URL())
	fmt.Fprintf(out, "Serving: %s\n", dir)
	fmt.Fprintln(out, "Press Ctrl+C to stop")
	return server.Serve(ctx)
}
