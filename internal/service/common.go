package service

import (
	"time"

	"devflow-backend/internal/query"
)

const timeFormat = time.RFC3339

// mapPage converts a page of models into a page of responses, keeping
// the pagination metadata intact.
func mapPage[M any, R any](page *query.Page[M], convert func(*M) R) *query.Page[R] {
	items := make([]R, len(page.Items))
	for i := range page.Items {
		items[i] = convert(&page.Items[i])
	}
	return &query.Page[R]{
		Items: items,
		Meta:  page.Meta,
	}
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeFormat)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
