package remote

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
)

// LegacyClient is a callback-style HTTP client in the XMLHttpRequest manner:
// Send returns immediately and exactly one of onLoad or onError is invoked
// later.
type LegacyClient interface {
	Send(method, url string, headers map[string]string, body []byte, onLoad func(status int, body []byte), onError func(err error))
}

// CallbackTransport adapts a LegacyClient to the Transport interface
type CallbackTransport struct {
	client LegacyClient
}

var _ interfaces.Transport = (*CallbackTransport)(nil)

// NewCallbackTransport creates a new CallbackTransport
func NewCallbackTransport(client LegacyClient) *CallbackTransport {
	return &CallbackTransport{client: client}
}

type callbackResult struct {
	resp *model.Response
	err  error
}

// Request sends the request and blocks until one of the callbacks fires.
// Extra callback invocations from a misbehaving client are ignored.
func (t *CallbackTransport) Request(ctx context.Context, url string, opts model.RequestOptions) (*model.Response, error) {
	done := make(chan callbackResult, 1)
	var once sync.Once

	t.client.Send(opts.MethodOrDefault(), url, opts.Headers, opts.Body,
		func(status int, body []byte) {
			once.Do(func() {
				done <- callbackResult{resp: &model.Response{Status: status, Body: body}}
			})
		},
		func(err error) {
			if err == nil {
				err = goerr.New("request failed", goerr.V("url", url))
			}
			once.Do(func() {
				done <- callbackResult{err: err}
			})
		},
	)

	result := <-done
	return result.resp, result.err
}

// HTTPLegacyClient implements LegacyClient on top of net/http
type HTTPLegacyClient struct {
	client *http.Client
}

// NewHTTPLegacyClient creates a new HTTPLegacyClient. A nil client falls back
// to http.DefaultClient.
func NewHTTPLegacyClient(client *http.Client) *HTTPLegacyClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPLegacyClient{client: client}
}

// Send issues the request in the background and reports through the callbacks
func (c *HTTPLegacyClient) Send(method, url string, headers map[string]string, body []byte, onLoad func(status int, body []byte), onError func(err error)) {
	go func() {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}

		req, err := http.NewRequest(method, url, reader)
		if err != nil {
			onError(err)
			return
		}
		req.Header.Set("User-Agent", userAgent)
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			onError(err)
			return
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			onError(err)
			return
		}
		onLoad(resp.StatusCode, data)
	}()
}
