package export

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewPreviewServer(t *testing.T) {
	server := NewPreviewServer("/tmp/test", 9002, densitySnapshot(), 400)

	if server.dir != "/tmp/test" {
		t.Errorf("Expected dir '/tmp/test', got %s", server.dir)
	}
	if server.Port() != 9002 {
		t.Errorf("Expected Port() to return 9002, got %d", server.Port())
	}
	if server.URL() != "http://localhost:9002" {
		t.Errorf("unexpected URL %s", server.URL())
	}
}

func TestFindAvailablePort(t *testing.T) {
	port, err := FindAvailablePort(19000, 19100)
	if err != nil {
		t.Fatalf("FindAvailablePort failed: %v", err)
	}
	if port < 19000 || port > 19100 {
		t.Errorf("Port %d is outside expected range 19000-19100", port)
	}
}

func TestPreviewServer_Start_MissingDir(t *testing.T) {
	server := NewPreviewServer("/nonexistent/path/12345", 19050, densitySnapshot(), 400)
	if err := server.Start(); err == nil {
		t.Error("Expected error for missing export directory")
	}
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestPreviewServer_Handler(t *testing.T) {
	dir := t.TempDir()
	snap := densitySnapshot()
	if _, err := ExportAll(context.Background(), dir, snap, 400); err != nil {
		t.Fatalf("ExportAll: %v", err)
	}

	server := NewPreviewServer(dir, 0, snap, 400)
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	resp, body := get(t, ts.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("index status %d", resp.StatusCode)
	}
	if resp.Header.Get("Pragma") != "no-cache" {
		t.Errorf("Expected Pragma: no-cache, got %s", resp.Header.Get("Pragma"))
	}
	for _, want := range []string{"20.48 px/cm (High)", "<svg", GridPNGName, ReportFileName} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(body, "<?xml") {
		t.Error("index should not contain the XML prolog")
	}

	resp, _ = get(t, ts.URL+"/"+GridPNGName)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("png status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("png content type %q", ct)
	}

	_, body = get(t, ts.URL+"/report.json")
	var report struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal([]byte(body), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Result != "20.48 px/cm (High)" {
		t.Errorf("report result %q", report.Result)
	}

	_, body = get(t, ts.URL+"/__preview__/status")
	var status previewStatus
	if err := json.Unmarshal([]byte(body), &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Status != "running" || len(status.Files) != 3 {
		t.Errorf("unexpected status %+v", status)
	}
}

func TestPreviewServer_ServeStopsOnCancel(t *testing.T) {
	port, err := FindAvailablePort(19060, 19080)
	if err != nil {
		t.Fatalf("Failed to find available port: %v", err)
	}
	server := NewPreviewServer(t.TempDir(), port, densitySnapshot(), 400)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestNoCacheMiddleware_OPTIONS(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Inner handler should not be called for OPTIONS")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	noCacheMiddleware(inner).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200 for OPTIONS, got %d", rec.Code)
	}
	if rec.Header().Get("Expires") != "0" {
		t.Errorf("Expected Expires: 0, got %s", rec.Header().Get("Expires"))
	}
}
