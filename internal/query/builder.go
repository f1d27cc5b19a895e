package query

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var schemaCache = &sync.Map{}

// Builder composes filters, search, and sorting on top of a GORM query.
// Field names are resolved against the model's schema; unknown fields and
// nil values are ignored so that arbitrary query strings cannot break a
// listing endpoint or inject columns into the SQL.
type Builder struct {
	db      *gorm.DB
	columns map[string]string
	table   string
}

// NewBuilder creates a query builder scoped to the given model.
func NewBuilder(db *gorm.DB, model interface{}) (*Builder, error) {
	s, err := schema.Parse(model, schemaCache, db.NamingStrategy)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	columns := make(map[string]string, len(s.Fields)*2)
	for _, f := range s.Fields {
		if f.DBName == "" {
			continue
		}
		columns[f.DBName] = f.DBName
		if jsonName := jsonFieldName(f); jsonName != "" {
			columns[jsonName] = f.DBName
		}
	}

	return &Builder{
		db:      db.Model(model),
		columns: columns,
		table:   s.Table,
	}, nil
}

func jsonFieldName(f *schema.Field) string {
	tag := f.StructField.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

// column resolves an exposed field name to its database column.
// Returns "" when the field is not part of the model.
func (b *Builder) column(field string) string {
	return b.columns[field]
}

func isNilValue(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return v.IsNil()
	}
	return false
}

// Filter adds an equality condition. Unknown fields and nil values are no-ops.
func (b *Builder) Filter(field string, value interface{}) *Builder {
	col := b.column(field)
	if col == "" || isNilValue(value) {
		return b
	}
	if v := reflect.ValueOf(value); v.Kind() == reflect.Ptr {
		value = v.Elem().Interface()
	}
	b.db = b.db.Where(fmt.Sprintf("%s = ?", col), value)
	return b
}

// Search adds a case-insensitive substring match ORed across the given
// fields. An empty term or an empty resolvable field list is a no-op.
func (b *Builder) Search(term string, fields ...string) *Builder {
	if term == "" {
		return b
	}
	var conditions []string
	var args []interface{}
	pattern := "%" + term + "%"
	for _, field := range fields {
		col := b.column(field)
		if col == "" {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("%s ILIKE ?", col))
		args = append(args, pattern)
	}
	if len(conditions) == 0 {
		return b
	}
	b.db = b.db.Where(strings.Join(conditions, " OR "), args...)
	return b
}

// Sort orders the result by the given field. Unknown fields are a no-op
// and anything other than "desc" sorts ascending.
func (b *Builder) Sort(field, direction string) *Builder {
	col := b.column(field)
	if col == "" {
		return b
	}
	dir := "ASC"
	if strings.EqualFold(direction, "desc") {
		dir = "DESC"
	}
	b.db = b.db.Order(fmt.Sprintf("%s %s", col, dir))
	return b
}

// Range adds inclusive lower and upper bounds on a numeric field.
// Either bound may be nil to leave that side open.
func (b *Builder) Range(field string, min, max interface{}) *Builder {
	col := b.column(field)
	if col == "" {
		return b
	}
	if !isNilValue(min) {
		b.db = b.db.Where(fmt.Sprintf("%s >= ?", col), min)
	}
	if !isNilValue(max) {
		b.db = b.db.Where(fmt.Sprintf("%s <= ?", col), max)
	}
	return b
}

// DateRange adds inclusive time bounds on a timestamp field.
func (b *Builder) DateRange(field string, start, end *time.Time) *Builder {
	col := b.column(field)
	if col == "" {
		return b
	}
	if start != nil {
		b.db = b.db.Where(fmt.Sprintf("%s >= ?", col), *start)
	}
	if end != nil {
		b.db = b.db.Where(fmt.Sprintf("%s <= ?", col), *end)
	}
	return b
}

// In adds a set-membership condition. An empty value list is a no-op.
func (b *Builder) In(field string, values []interface{}) *Builder {
	col := b.column(field)
	if col == "" || len(values) == 0 {
		return b
	}
	b.db = b.db.Where(fmt.Sprintf("%s IN ?", col), values)
	return b
}

// Null filters on column nullness.
func (b *Builder) Null(field string, isNull bool) *Builder {
	col := b.column(field)
	if col == "" {
		return b
	}
	if isNull {
		b.db = b.db.Where(fmt.Sprintf("%s IS NULL", col))
	} else {
		b.db = b.db.Where(fmt.Sprintf("%s IS NOT NULL", col))
	}
	return b
}

// Where adds a raw condition for lookups the field map cannot express,
// such as joins. The caller owns the SQL fragment.
func (b *Builder) Where(query string, args ...interface{}) *Builder {
	b.db = b.db.Where(query, args...)
	return b
}

// DB returns the assembled GORM query.
func (b *Builder) DB() *gorm.DB {
	return b.db
}
