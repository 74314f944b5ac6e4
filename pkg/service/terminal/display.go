package terminal

import (
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

// Display prints loading indicators. Result content is printed by Renderer
// directly, so SetContent only records the last markup per region.
type Display struct {
	w       io.Writer
	mu      sync.Mutex
	visible map[types.RegionID]bool
	content map[types.RegionID]template.HTML
}

var _ interfaces.Display = (*Display)(nil)

// NewDisplay creates a Display writing to w
func NewDisplay(w io.Writer) *Display {
	return &Display{
		w:       w,
		visible: make(map[types.RegionID]bool),
		content: make(map[types.RegionID]template.HTML),
	}
}

func (d *Display) SetContent(region types.RegionID, markup template.HTML) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.content[region] = markup
}

func (d *Display) Show(region types.RegionID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.visible[region] {
		return
	}
	d.visible[region] = true
	if isLoadingRegion(region) {
		fmt.Fprintln(d.w, color.Cyan.Sprintf("Loading %s...", panelOf(region)))
	}
}

func (d *Display) Hide(region types.RegionID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visible[region] = false
}

// Visible reports whether region is currently shown
func (d *Display) Visible(region types.RegionID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible[region]
}

func isLoadingRegion(region types.RegionID) bool {
	return strings.HasSuffix(string(region), "-status")
}

func panelOf(region types.RegionID) string {
	return strings.TrimSuffix(string(region), "-status")
}
