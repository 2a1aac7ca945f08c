package pagenav

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// GORMSource is a DataSource backed by a gorm query.
//
// The query must resolve to a table, either through Model/Table on the passed
// *gorm.DB or through the model inferred from T. Conditions already applied
// to the query are kept for both the count and the item queries.
//
// DataSource methods cannot return errors, so the first query error is kept
// and exposed through Err. After a failure no further queries are run. Check
// Err after the page has been fetched:
//
//	src := pagenav.NewGORMSource[User](db.Model(&User{}).Where("age > ?", 18))
//	items := pagenav.NewPager[User]().WithSource(src).WithPage(page).GetItemsOnPage()
//	if err := src.Err(); err != nil {
//	    return err
//	}
//
// GORMSource is not safe for concurrent use.
type GORMSource[T any] struct {
	db     *gorm.DB
	count  *int
	err    error
	logger zerolog.Logger
}

func NewGORMSource[T any](db *gorm.DB) *GORMSource[T] {
	return &GORMSource[T]{
		db:     db,
		logger: zerolog.Nop(),
	}
}

// WithLogger sets the logger used to report query errors.
func (s *GORMSource[T]) WithLogger(logger zerolog.Logger) *GORMSource[T] {
	if s == nil {
		s = new(GORMSource[T])
	}

	s.logger = logger

	return s
}

// Count - implements DataSource. The row count is queried once and memoized.
// Returns 0 once a query has failed.
func (s *GORMSource[T]) Count() int {
	if s == nil || s.db == nil || s.err != nil {
		return 0
	}

	if s.count != nil {
		return *s.count
	}

	var n int64
	if err := s.session().Count(&n).Error; err != nil {
		s.fail(fmt.Errorf("failed to count rows: %w", err))
		return 0
	}

	count := int(n)
	s.count = &count

	return count
}

// GetItems - implements DataSource. Returns nil once a query has failed.
func (s *GORMSource[T]) GetItems(offset, limit int) []T {
	if s == nil || s.db == nil || s.err != nil {
		return nil
	}

	if limit <= 0 {
		return []T{}
	}

	var items []T
	err := s.session().
		Offset(max(offset, 0)).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		s.fail(fmt.Errorf("failed to get items at offset %d: %w", offset, err))
		return nil
	}

	return items
}

// Err returns the first error met while querying the database.
func (s *GORMSource[T]) Err() error {
	if s == nil {
		return nil
	}

	return s.err
}

// session returns a reusable copy of the query so that the count and item
// queries do not share clauses.
func (s *GORMSource[T]) session() *gorm.DB {
	tx := s.db.Session(&gorm.Session{})
	if tx.Statement.Model == nil && tx.Statement.Table == "" {
		tx = tx.Model(new(T))
	}

	return tx
}

func (s *GORMSource[T]) fail(err error) {
	s.logger.Error().Err(err).Msg("pagenav: gorm source query failed")
	s.err = err
}

var _ DataSource[any] = (*GORMSource[any])(nil)
