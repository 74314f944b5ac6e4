package interfaces

//go:generate moq -stub -out mocks/display_mock.go -pkg mocks . Display Renderer

import (
	"context"
	"html/template"

	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

// Display is the output surface made of named regions
type Display interface {
	// SetContent replaces the whole content of a region
	SetContent(region types.RegionID, markup template.HTML)
	// Show makes a region visible
	Show(region types.RegionID)
	// Hide makes a region invisible
	Hide(region types.RegionID)
}

// Renderer turns an outcome into a view written to a display region
type Renderer interface {
	ShowRecords(ctx context.Context, region types.RegionID, kind types.RecordKind, records []model.Record, opts model.RenderOptions) error
	ShowError(ctx context.Context, region types.RegionID, message, hint string) error
}
