package query

import (
	"strings"
	"testing"
	"time"

	"devflow-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, b *Builder) string {
	t.Helper()
	var out []models.Issue
	stmt := b.DB().Find(&out).Statement
	return stmt.SQL.String()
}

func TestBuilderFilter(t *testing.T) {
	t.Run("known field adds condition", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Filter("status", "todo"))
		assert.Contains(t, sql, "status = ")
	})

	t.Run("json name resolves to column", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Filter("order", 3))
		assert.Contains(t, sql, "sort_order = ")
	})

	t.Run("unknown field is a no-op", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Filter("no_such_column", "x"))
		assert.NotContains(t, sql, "no_such_column")
	})

	t.Run("nil value is a no-op", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		var status *string
		sql := buildSQL(t, b.Filter("status", status))
		assert.NotContains(t, sql, "status = ")
	})

	t.Run("non-nil pointer is dereferenced", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		status := "done"
		sql := buildSQL(t, b.Filter("status", &status))
		assert.Contains(t, sql, "status = ")
	})
}

func TestBuilderSearch(t *testing.T) {
	t.Run("ORs conditions across fields", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Search("login", "title", "description"))
		assert.Contains(t, sql, "title ILIKE ")
		assert.Contains(t, sql, " OR ")
		assert.Contains(t, sql, "description ILIKE ")
	})

	t.Run("empty term is a no-op", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Search("", "title"))
		assert.NotContains(t, sql, "ILIKE")
	})

	t.Run("unresolvable fields are skipped", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Search("x", "bogus"))
		assert.NotContains(t, sql, "ILIKE")
	})
}

func TestBuilderSort(t *testing.T) {
	t.Run("descending", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Sort("created_at", "desc"))
		assert.Contains(t, sql, "created_at DESC")
	})

	t.Run("anything else sorts ascending", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Sort("created_at", "sideways"))
		assert.Contains(t, sql, "created_at ASC")
	})

	t.Run("unknown field is a no-op", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Sort("bogus", "desc"))
		assert.NotContains(t, strings.ToUpper(sql), "ORDER BY BOGUS")
	})
}

func TestBuilderRangeAndNull(t *testing.T) {
	t.Run("range with both bounds", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Range("estimate_hours", 1, 8))
		assert.Contains(t, sql, "estimate_hours >= ")
		assert.Contains(t, sql, "estimate_hours <= ")
	})

	t.Run("open-ended range", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Range("estimate_hours", 1, nil))
		assert.Contains(t, sql, "estimate_hours >= ")
		assert.NotContains(t, sql, "estimate_hours <= ")
	})

	t.Run("date range", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		start := time.Now().Add(-24 * time.Hour)
		sql := buildSQL(t, b.DateRange("created_at", &start, nil))
		assert.Contains(t, sql, "created_at >= ")
	})

	t.Run("null filter", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Null("sprint_id", true))
		assert.Contains(t, sql, "sprint_id IS NULL")
	})

	t.Run("not null filter", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.Null("sprint_id", false))
		assert.Contains(t, sql, "sprint_id IS NOT NULL")
	})

	t.Run("in filter", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.In("status", []interface{}{"todo", "in_progress"}))
		assert.Contains(t, sql, "status IN ")
	})

	t.Run("empty in list is a no-op", func(t *testing.T) {
		b, err := NewBuilder(newDryRunDB(t), &models.Issue{})
		require.NoError(t, err)
		sql := buildSQL(t, b.In("status", nil))
		assert.NotContains(t, sql, "status IN ")
	})
}

func TestParamsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       Params
		page     int
		pageSize int
	}{
		{"zero values get defaults", Params{}, 1, DefaultPageSize},
		{"negative page clamps to one", Params{Page: -5, PageSize: 10}, 1, 10},
		{"oversized page size clamps to max", Params{Page: 2, PageSize: 500}, 2, MaxPageSize},
		{"in-range values pass through", Params{Page: 3, PageSize: 50}, 3, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.page, tt.in.Page)
			assert.Equal(t, tt.pageSize, tt.in.PageSize)
		})
	}
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 3, PageSize: 20}
	assert.Equal(t, 40, p.Offset())

	p = Params{Page: 1, PageSize: 20}
	assert.Equal(t, 0, p.Offset())
}
