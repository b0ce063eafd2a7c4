package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/fontinst/pkg/utils/safe"
)

func TestRun(t *testing.T) {
	t.Run("returns nil on success", func(t *testing.T) {
		called := false
		err := safe.Run(context.Background(), "ok", func(ctx context.Context) error {
			called = true
			return nil
		})
		gt.NoError(t, err)
		gt.True(t, called)
	})

	t.Run("passes handler error through", func(t *testing.T) {
		want := errors.New("boom")
		err := safe.Run(context.Background(), "fail", func(ctx context.Context) error {
			return want
		})
		gt.True(t, errors.Is(err, want))
	})

	t.Run("recovers from panic and logs it", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}))
		ctx := ctxlog.With(context.Background(), logger)

		err := safe.Run(ctx, "register", func(ctx context.Context) error {
			panic("com failure")
		})

		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("panic in step")
		gt.String(t, buf.String()).Contains("panic in step")
		gt.String(t, buf.String()).Contains("com failure")
		gt.String(t, buf.String()).Contains("register")
	})
}
