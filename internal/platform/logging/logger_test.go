package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_ContextAddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	ctx := WithRequestID(context.Background(), "req-42")
	logger.WarnContext(ctx, "save formation failed", "match_id", int64(7), "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-42" {
		t.Fatalf("missing request id: %+v", fields)
	}
	if fields["match_id"] != int64(7) {
		t.Fatalf("unexpected match_id: %+v", fields["match_id"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("unexpected error field: %+v", fields["error"])
	}
}

func TestLogger_OddArgsAndNilReceiver(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core)).Named("stats")

	logger.Info("dangling", "key")
	if logs.Len() != 1 {
		t.Fatalf("expected one entry, got %d", logs.Len())
	}
	if _, ok := logs.All()[0].ContextMap()["key"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}

	var nilLogger *Logger
	nilLogger.Info("no panic")
}

func TestLogger_MirrorReceivesEnabledEntries(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
	})
	defer SetMirror(nil)

	logger.Debug("filtered")
	logger.InfoContext(context.Background(), "match started", "match_id", int64(3))

	if len(got) != 1 || got[0] != "info:match started" {
		t.Fatalf("unexpected mirrored entries: %v", got)
	}
}
