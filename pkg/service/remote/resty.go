package remote

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
)

const userAgent = "ajaxdemo/0.1"

// RestyTransport implements Transport with a resty client
type RestyTransport struct {
	client *resty.Client
}

var _ interfaces.Transport = (*RestyTransport)(nil)

// NewRestyTransport creates a new RestyTransport. A zero timeout leaves the
// client without a deadline of its own.
func NewRestyTransport(timeout time.Duration) *RestyTransport {
	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &RestyTransport{
		client: client,
	}
}

// Request sends a single request and returns the status and raw body
func (t *RestyTransport) Request(ctx context.Context, url string, opts model.RequestOptions) (*model.Response, error) {
	req := t.client.R().SetContext(ctx)
	for key, value := range opts.Headers {
		req.SetHeader(key, value)
	}
	if opts.Body != nil {
		req.SetBody(opts.Body)
	}

	resp, err := req.Execute(opts.MethodOrDefault(), url)
	if err != nil {
		return nil, err
	}

	return &model.Response{
		Status: resp.StatusCode(),
		Body:   resp.Body(),
	}, nil
}
