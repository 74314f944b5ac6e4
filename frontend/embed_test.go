package frontend_test

import (
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ajaxdemo/frontend"
)

func TestGetHTTPFS(t *testing.T) {
	fsys, err := frontend.GetHTTPFS()
	gt.NoError(t, err).Required()

	for _, name := range []string{"/index.html", "/static/app.js", "/static/style.css"} {
		f, err := fsys.Open(name)
		gt.NoError(t, err).Required()
		content, err := io.ReadAll(f)
		gt.NoError(t, err)
		gt.True(t, len(content) > 0)
		gt.NoError(t, f.Close())
	}
}
