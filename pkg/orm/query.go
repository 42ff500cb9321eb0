// Package orm is a thin chainable wrapper over *gorm.DB. Every terminal
// call is timed into metrics.DBQueryDuration.
package orm

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalog/pkg/metrics"
)

type Query struct {
	db *gorm.DB
}

// New starts a query chain on db.
func New(db *gorm.DB) *Query {
	return &Query{db: db}
}

// WithContext binds the chain to ctx. The pooled connection is held only
// while the terminal call runs.
func (q *Query) WithContext(ctx context.Context) *Query {
	return &Query{db: q.db.WithContext(ctx)}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query interface{}, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

// Select restricts writes (or reads) to the named columns. Updates with an
// explicit column list also writes zero values.
func (q *Query) Select(columns ...string) *Query {
	return &Query{db: q.db.Select(columns)}
}

// Get loads every matching row into dest.
func (q *Query) Get(dest interface{}) error {
	start := time.Now()
	return observe("select", start, q.db.Find(dest).Error)
}

// First loads one row; returns gorm.ErrRecordNotFound when there is none.
func (q *Query) First(dest interface{}, conds ...interface{}) error {
	start := time.Now()
	return observe("select", start, q.db.First(dest, conds...).Error)
}

func (q *Query) Create(value interface{}) error {
	start := time.Now()
	return observe("insert", start, q.db.Create(value).Error)
}

// Updates returns the number of rows written.
func (q *Query) Updates(values interface{}) (int64, error) {
	start := time.Now()
	tx := q.db.Updates(values)
	return tx.RowsAffected, observe("update", start, tx.Error)
}

// Delete returns the number of rows removed.
func (q *Query) Delete(value interface{}, conds ...interface{}) (int64, error) {
	start := time.Now()
	tx := q.db.Delete(value, conds...)
	return tx.RowsAffected, observe("delete", start, tx.Error)
}

func observe(operation string, start time.Time, err error) error {
	metrics.ObserveDBQuery(operation, start)

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		metrics.RecordDBError(operation)
	}
	return err
}
