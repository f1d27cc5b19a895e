package query

import "gorm.io/gorm"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params carries the pagination query parameters as bound by gin.
type Params struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// Normalize clamps the parameters into their valid ranges. A zero value
// selects the defaults; a page size above the cap is reduced to the cap.
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset returns the row offset for the current page.
func (p *Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Meta is the pagination metadata attached to every list response.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// Page is a single page of results plus pagination metadata.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// NewPage wraps an already fetched slice and total in pagination
// metadata. Params must be normalized by the caller.
func NewPage[T any](items []T, total int64, params Params) *Page[T] {
	totalPages := int((total + int64(params.PageSize) - 1) / int64(params.PageSize))
	return &Page[T]{
		Items: items,
		Meta: Meta{
			Page:       params.Page,
			PageSize:   params.PageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    params.Page < totalPages,
			HasPrev:    params.Page > 1,
		},
	}
}

// Paginate counts the filtered query and fetches one page of results.
// The count runs on the same query as the fetch so filters always apply
// to both. Requesting a page past the end yields an empty item list with
// the true total.
func Paginate[T any](db *gorm.DB, params Params) (*Page[T], error) {
	params.Normalize()

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	items := make([]T, 0, params.PageSize)
	if err := db.Offset(params.Offset()).Limit(params.PageSize).Find(&items).Error; err != nil {
		return nil, err
	}

	return NewPage(items, total, params), nil
}
