package interfaces

//go:generate moq -out mocks/transport_mock.go -pkg mocks . Transport

import (
	"context"

	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
)

// Transport sends a single HTTP request and returns its status and body.
// A non-2xx status is not an error at this level.
type Transport interface {
	Request(ctx context.Context, url string, opts model.RequestOptions) (*model.Response, error)
}
