package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/csheth/templeops/internal/tuitest"
)

func TestTUIPlaysTurnsInTerminal(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	if runtime.GOOS == "windows" {
		t.Skip("pty harness needs a unix terminal")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	home := t.TempDir()
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen"},
		Dir:     home,
		Env: []string{
			"XDG_CONFIG_HOME=" + filepath.Join(home, "config"),
			"XDG_STATE_HOME=" + filepath.Join(home, "state"),
			"TEMPLEOPS_THINK_DELAY=10ms",
			"TEMPLEOPS_SECTION_CHAR_DELAY=1ms",
			"TEMPLEOPS_SECTION_PAUSE=10ms",
			"TEMPLEOPS_CHAT_CHAR_DELAY=1ms",
			"TEMPLEOPS_LOG_LEVEL=off",
		},
		Width:  120,
		Height: 40,
		Steps: []tuitest.Step{
			tuitest.Wait(time.Second),
			tuitest.Type("do we have flower stock"),
			tuitest.Wait(1500 * time.Millisecond),
			tuitest.Type("go to assets"),
			tuitest.Wait(1500 * time.Millisecond),
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        15 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	plain := rec.PlainText()
	for _, want := range []string{"Conversation", "Canvas", "Flower stock: 40 kg"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("terminal output missing %q", want)
		}
	}
	if _, ok := rec.LastFrameContaining("Module Assets"); !ok && !strings.Contains(plain, "Module Assets") {
		t.Fatal("module indicator never showed Assets")
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "templeops-integration")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
