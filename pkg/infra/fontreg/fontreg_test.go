package fontreg_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/fontinst/pkg/infra/fontreg"
)

func TestNew(t *testing.T) {
	t.Run("none never fails", func(t *testing.T) {
		r, err := fontreg.New(fontreg.KindNone, false)
		gt.NoError(t, err)
		gt.False(t, r.CopiesFile())
		gt.NoError(t, r.Register(context.Background(), "/nonexistent/src.ttf", "/nonexistent/font.ttf"))
	})

	t.Run("auto resolves to a backend", func(t *testing.T) {
		r, err := fontreg.New(fontreg.KindAuto, false)
		gt.NoError(t, err)
		gt.Value(t, r).NotNil()
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := fontreg.New("magic", false)
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("unknown registrar")
	})
}
