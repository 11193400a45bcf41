package pagination

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/placementhub/joblist/internal/listing"
)

// PaginationMeta contains metadata about a printed page.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage  int    `json:"current_page"   yaml:"current_page"`
	PageSize     int    `json:"page_size"      yaml:"page_size"`
	TotalPages   int    `json:"total_pages"    yaml:"total_pages"`
	TotalItems   int    `json:"total_items"    yaml:"total_items"`
	DatasetSize  int    `json:"dataset_size"   yaml:"dataset_size"`
	HasPrevious  bool   `json:"has_previous"   yaml:"has_previous"`
	HasNext      bool   `json:"has_next"       yaml:"has_next"`
	State        string `json:"state"          yaml:"state"`
	EndOfResults bool   `json:"end_of_results" yaml:"end_of_results"`
}

// NewPaginationMeta derives metadata from a controller snapshot. TotalPages
// counts pages that hold at least one item; HasNext mirrors the controller's
// next control, which stays visible after a completely full page even when
// nothing follows.
func NewPaginationMeta(view listing.ViewState) PaginationMeta {
	totalPages := (view.ResultCount + listing.PageSize - 1) / listing.PageSize

	return PaginationMeta{
		CurrentPage:  view.Page,
		PageSize:     listing.PageSize,
		TotalPages:   totalPages,
		TotalItems:   view.ResultCount,
		DatasetSize:  view.DatasetSize,
		HasPrevious:  view.ShowPrev,
		HasNext:      view.ShowNext,
		State:        view.State.String(),
		EndOfResults: view.EndOfResults,
	}
}

// Summary renders a one-line description such as
// "Page 2 of 3 · 25 of 1,204 jobs", with numbers formatted for tag.
func (m PaginationMeta) Summary(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("Page %d of %d · %d of %d jobs", m.CurrentPage, max(m.TotalPages, m.CurrentPage, 1), m.TotalItems, m.DatasetSize)
}
