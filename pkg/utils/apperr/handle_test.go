package apperr_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ajaxdemo/pkg/utils/apperr"
)

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	apperr.Handle(ctx, goerr.New("notification backend down"))
	gt.S(t, buf.String()).Contains("application error")
	gt.S(t, buf.String()).Contains("notification backend down")

	buf.Reset()
	apperr.Handle(ctx, nil)
	gt.Equal(t, 0, buf.Len())
}
