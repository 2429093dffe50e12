package main_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
	buildOut  []byte
)

// buildTaBinary compiles cmd/ta once per test run and returns its path.
func buildTaBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e build in -short mode")
	}
	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "ta-e2e-")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "ta")
		cmd := exec.Command("go", "build", "-o", binPath, "./cmd/ta")
		cmd.Dir = filepath.Join("..", "..")
		buildOut, buildErr = cmd.CombinedOutput()
	})
	if buildErr != nil {
		t.Fatalf("go build ./cmd/ta: %v\n%s", buildErr, buildOut)
	}
	return binPath
}

// runTa runs the binary with an isolated config path unless args names one.
func runTa(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	ta := buildTaBinary(t)
	full := append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...)
	cmd := exec.Command(ta, full...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err = cmd.Run()
	return out.String(), errOut.String(), err
}
