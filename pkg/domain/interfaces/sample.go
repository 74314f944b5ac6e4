package interfaces

import (
	"context"

	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
)

// SampleStore provides the static demo records
type SampleStore interface {
	Users(ctx context.Context) []model.User
	Posts(ctx context.Context) []model.Post
}
