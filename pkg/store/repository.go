package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Column is an updatable column. Values only come from the constants
// declared with each entity, so SET clauses never carry caller text.
type Column string

// Changes holds the columns explicitly set by a partial update.
type Changes map[Column]interface{}

// Set records a column value and returns the receiver for chaining.
func (c Changes) Set(column Column, value interface{}) Changes {
	c[column] = value
	return c
}

// Entity describes the table behind a repository.
type Entity struct {
	Name    string
	Columns []Column
}

func (e Entity) allows(column Column) bool {
	for _, c := range e.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Repository implements list/get/add/update/delete for one table. Each
// method runs a single statement on a pooled connection.
type Repository[M any, K Key] struct {
	db     *gorm.DB
	entity Entity
}

func NewRepository[M any, K Key](db *gorm.DB, entity Entity) *Repository[M, K] {
	return &Repository[M, K]{
		db:     db,
		entity: entity,
	}
}

func (r *Repository[M, K]) Entity() Entity {
	return r.entity
}

// All returns every row ordered by id.
func (r *Repository[M, K]) All(ctx context.Context) ([]M, error) {
	rows := []M{}
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", r.entity.Name)
	}
	return rows, nil
}

// Get returns the rows matching key ordered by id. A unique key matching
// nothing fails with gorm.ErrRecordNotFound; other keys return an empty slice.
func (r *Repository[M, K]) Get(ctx context.Context, key K) ([]M, error) {
	l := key.lookup()
	rows := []M{}
	err := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: l.column}, Value: l.value}).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s by %s", r.entity.Name, l.column)
	}
	if l.unique && len(rows) == 0 {
		return nil, errors.Wrapf(gorm.ErrRecordNotFound, "%s %s=%v", r.entity.Name, l.column, l.value)
	}
	return rows, nil
}

// Add inserts row and returns it with the id assigned by the store.
func (r *Repository[M, K]) Add(ctx context.Context, row *M) (*M, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to add %s", r.entity.Name)
	}
	return row, nil
}

// Update sets only the columns present in changes and returns the row as
// stored afterwards, read back by the same statement.
func (r *Repository[M, K]) Update(ctx context.Context, id int32, changes Changes) (*M, error) {
	if len(changes) == 0 {
		return nil, ErrNothingToUpdate
	}
	values := make(map[string]interface{}, len(changes))
	for column, value := range changes {
		if !r.entity.allows(column) {
			return nil, errors.Wrapf(ErrUnknownColumn, "%s.%s", r.entity.Name, column)
		}
		values[string(column)] = value
	}
	row := new(M)
	result := r.db.WithContext(ctx).
		Model(row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to update %s %d", r.entity.Name, id)
	}
	if result.RowsAffected == 0 {
		return nil, errors.Wrapf(gorm.ErrRecordNotFound, "%s id=%d", r.entity.Name, id)
	}
	return row, nil
}

// Delete removes every row matching key and reports how many were removed.
func (r *Repository[M, K]) Delete(ctx context.Context, key K) (int64, error) {
	l := key.lookup()
	result := r.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: l.column}, Value: l.value}).
		Delete(new(M))
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "failed to delete %s by %s", r.entity.Name, l.column)
	}
	return result.RowsAffected, nil
}
