package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/accountkit/user-service/internal/pkg/reqctx"
)

func TestWithCtx_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")
	InitWithWriter(&buf)

	ctx := reqctx.WithRequestID(context.Background(), "req-123")
	WithCtx(ctx).Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Fatalf("expected request_id field, got %s", out)
	}
}

func TestWithCtx_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_FORMAT", "json")
	InitWithWriter(&buf)

	WithCtx(context.Background()).Info().Msg("hello")

	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("unexpected request_id field: %s", buf.String())
	}
}

func TestWithCtx_ErrorChainUsable(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "info")
	InitWithWriter(&buf)

	ctx := reqctx.WithRequestID(context.Background(), "req-err")
	WithCtx(ctx).Error().Str("code", "internal_error").Msg("request_failed")

	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, `"request_id":"req-err"`) {
		t.Fatalf("expected error event with request_id, got %s", out)
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "warn")
	InitWithWriter(&buf)

	Logger.Info().Msg("dropped")
	Logger.Warn().Msg("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info must be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn must pass: %s", out)
	}
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "loud")
	InitWithWriter(&buf)

	Logger.Info().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Fatalf("expected info fallback, got %s", buf.String())
	}
}
