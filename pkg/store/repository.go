package store

import (
	"context"
	"errors"
	"fmt"

	"Recetas-Backend/pkg/schema"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Preload names an association to materialize on read. Columns narrows the
// selected columns of the loaded rows and must keep the keys gorm joins on.
type Preload struct {
	Path    string
	Columns []string
	Order   string
}

type Query struct {
	Where    map[string]any
	Preloads []Preload
	Order    string
}

func (q Query) apply(db *gorm.DB) *gorm.DB {
	if len(q.Where) > 0 {
		db = db.Where(q.Where)
	}
	db = preload(db, q.Preloads)
	if q.Order != "" {
		db = db.Order(q.Order)
	}
	return db
}

func preload(db *gorm.DB, preloads []Preload) *gorm.DB {
	for _, p := range preloads {
		if len(p.Columns) == 0 && p.Order == "" {
			db = db.Preload(p.Path)
			continue
		}
		columns, order := p.Columns, p.Order
		db = db.Preload(p.Path, func(tx *gorm.DB) *gorm.DB {
			if len(columns) > 0 {
				tx = tx.Select(columns)
			}
			if order != "" {
				tx = tx.Order(order)
			}
			return tx
		})
	}
	return db
}

// Repository is the typed half of the gateway for one entity.
type Repository[T schema.Model] struct {
	gateway *Gateway
}

func NewRepository[T schema.Model](gateway *Gateway) *Repository[T] {
	return &Repository[T]{gateway: gateway}
}

func (r *Repository[T]) table() string {
	var zero T
	return zero.TableName()
}

func (r *Repository[T]) FindByKey(ctx context.Context, id int, preloads ...Preload) (*T, error) {
	var row T
	err := preload(r.gateway.db.WithContext(ctx), preloads).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding %s %d: %w", r.table(), id, err)
	}
	return &row, nil
}

func (r *Repository[T]) FindAll(ctx context.Context, q Query) ([]T, error) {
	rows := make([]T, 0)
	if err := q.apply(r.gateway.db.WithContext(ctx)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.table(), err)
	}
	return rows, nil
}

func (r *Repository[T]) FindOneWhere(ctx context.Context, q Query) (*T, error) {
	var row T
	if err := q.apply(r.gateway.db.WithContext(ctx)).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("finding %s: %w", r.table(), err)
	}
	return &row, nil
}

func (r *Repository[T]) Create(ctx context.Context, row *T) error {
	if err := r.gateway.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return fmt.Errorf("creating %s: %w", r.table(), err)
	}
	return nil
}

// BulkCreate inserts rows in one statement. A failing row fails them all.
func (r *Repository[T]) BulkCreate(ctx context.Context, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := r.gateway.db.WithContext(ctx).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return fmt.Errorf("creating %s: %w", r.table(), err)
	}
	return nil
}

// Update writes only the columns named in patch.
func (r *Repository[T]) Update(ctx context.Context, row *T, patch map[string]any) error {
	if len(patch) == 0 {
		return nil
	}
	err := r.gateway.db.WithContext(ctx).Model(row).Omit(clause.Associations).Updates(patch).Error
	if err != nil {
		return fmt.Errorf("updating %s: %w", r.table(), err)
	}
	return nil
}

// Delete removes the row with id and everything that references it.
func (r *Repository[T]) Delete(ctx context.Context, id int) error {
	return r.gateway.DeleteCascade(ctx, r.table(), id)
}
