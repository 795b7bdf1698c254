package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseSlashCommand(t *testing.T) {
	cases := []struct {
		input string
		name  string
		arg   string
		ok    bool
	}{
		{input: "/upload circular.pdf", name: "upload", arg: "circular.pdf", ok: true},
		{input: "  /CLEAR  ", name: "clear", ok: true},
		{input: "/upload   https://example.org/a b.pdf ", name: "upload", arg: "https://example.org/a b.pdf", ok: true},
		{input: "upload circular.pdf"},
	}
	for _, tc := range cases {
		name, arg, ok := parseSlashCommand(tc.input)
		if name != tc.name || arg != tc.arg || ok != tc.ok {
			t.Fatalf("parseSlashCommand(%q) = %q, %q, %v", tc.input, name, arg, ok)
		}
	}
}

func TestTrimmedTitle(t *testing.T) {
	if got := trimmedTitle("  short  "); got != "short" {
		t.Fatalf("unexpected title %q", got)
	}
	long := strings.Repeat("ಶ", 80)
	got := trimmedTitle(long)
	if !strings.HasSuffix(got, "…") || len([]rune(got)) != 58 {
		t.Fatalf("long title not trimmed on rune boundaries: %q", got)
	}
}

func TestImmediateTickDeliversMessage(t *testing.T) {
	msg := stepCmd(7, 0)()
	if got, ok := msg.(stepMsg); !ok || got.turn != 7 {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestUploadJobReportsMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.pdf")
	msg, err := uploadJob(missing)(context.Background())
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
	result, ok := msg.(uploadResultMsg)
	if !ok || result.err == nil || result.source != missing {
		t.Fatalf("unexpected payload %#v", msg)
	}
}

func TestJobBusLogsOutcome(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := newJobBus(zap.New(core))

	start := jobSnapshot{ID: bus.nextID(jobKindUpload), Kind: jobKindUpload, Status: jobStatusRunning}
	if start.ID != "upload-1" {
		t.Fatalf("unexpected job id %q", start.ID)
	}
	failed := bus.finish(start, errors.New("no text"))
	if failed.Status != jobStatusFailed || failed.Err != "no text" {
		t.Fatalf("unexpected snapshot %+v", failed)
	}
	ok := bus.finish(start, nil)
	if ok.Status != jobStatusSucceeded {
		t.Fatalf("unexpected snapshot %+v", ok)
	}

	entries := logs.All()
	if len(entries) != 2 || entries[0].Message != "job failed" || entries[1].Message != "job succeeded" {
		t.Fatalf("unexpected log entries %+v", entries)
	}
	if entries[0].LoggerName != "jobs" {
		t.Fatalf("unexpected logger name %q", entries[0].LoggerName)
	}
}
