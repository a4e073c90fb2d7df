// Package resource is the CRUD template shared by every entity exposed over
// HTTP. A Service is configured with the reads it eager-loads; writes go
// through the integrity checks and the gateway.
package resource

import (
	"context"
	"errors"
	"fmt"

	"Recetas-Backend/domain"
	"Recetas-Backend/pkg/integrity"
	"Recetas-Backend/pkg/schema"
	"Recetas-Backend/pkg/store"
)

type (
	CreateRequest[T schema.Model] interface {
		// RequestedID is the caller-chosen key, zero to have one assigned.
		RequestedID() int
		Entity(id int) T
	}

	UpdateRequest interface {
		Patch() map[string]any
	}

	Options struct {
		// Preloads are applied to every read.
		Preloads []store.Preload
		// DetailPreloads are added to single-row and by-parent reads.
		DetailPreloads []store.Preload
		Order          string
	}

	Service[T schema.Model] interface {
		Label() string
		List(ctx context.Context) ([]T, error)
		Get(ctx context.Context, id int) (T, error)
		ListBy(ctx context.Context, column string, parentID int) ([]T, error)
		Create(ctx context.Context, req CreateRequest[T]) (T, error)
		Update(ctx context.Context, id int, req UpdateRequest) (T, error)
		Delete(ctx context.Context, id int) error
	}

	service[T schema.Model] struct {
		gateway    *store.Gateway
		repository *store.Repository[T]
		entity     *schema.Entity
		opts       Options
	}
)

func NewService[T schema.Model](gateway *store.Gateway, opts Options) Service[T] {
	var zero T
	return &service[T]{
		gateway:    gateway,
		repository: store.NewRepository[T](gateway),
		entity:     gateway.Registry().MustEntity(zero.TableName()),
		opts:       opts,
	}
}

func (s *service[T]) Label() string { return s.entity.Label }

func (s *service[T]) detailPreloads() []store.Preload {
	out := make([]store.Preload, 0, len(s.opts.Preloads)+len(s.opts.DetailPreloads))
	out = append(out, s.opts.Preloads...)
	return append(out, s.opts.DetailPreloads...)
}

func (s *service[T]) List(ctx context.Context) ([]T, error) {
	return s.repository.FindAll(ctx, store.Query{Preloads: s.opts.Preloads, Order: s.opts.Order})
}

func (s *service[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	row, err := s.repository.FindByKey(ctx, id, s.detailPreloads()...)
	if err != nil {
		return zero, s.translate(err)
	}
	return *row, nil
}

// ListBy returns the rows whose column references parentID. A missing parent
// and an empty result are both NotFound.
func (s *service[T]) ListBy(ctx context.Context, column string, parentID int) ([]T, error) {
	fk, ok := s.entity.ForeignKey(column)
	if !ok {
		return nil, fmt.Errorf("%s has no foreign key %s", s.entity.Table, column)
	}
	exists, err := s.gateway.Exists(ctx, fk.Parent, parentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.NotFound(fk.Label)
	}

	rows, err := s.repository.FindAll(ctx, store.Query{
		Where:    map[string]any{column: parentID},
		Preloads: s.detailPreloads(),
		Order:    s.opts.Order,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NoRows(s.entity.Label, fk.Label)
	}
	return rows, nil
}

func (s *service[T]) Create(ctx context.Context, req CreateRequest[T]) (T, error) {
	var row T
	err := s.gateway.Transaction(ctx, func(tx *store.Gateway) error {
		ids := []int{req.RequestedID()}
		if err := tx.AssignIDs(ctx, s.entity.Table, ids); err != nil {
			return err
		}
		row = req.Entity(ids[0])
		if err := integrity.NewChecker(tx).CheckCreate(ctx, s.entity.Table, row.Values()); err != nil {
			return err
		}
		return store.NewRepository[T](tx).Create(ctx, &row)
	})
	if err != nil {
		var zero T
		return zero, s.translate(err)
	}
	return row, nil
}

func (s *service[T]) Update(ctx context.Context, id int, req UpdateRequest) (T, error) {
	var updated T
	err := s.gateway.Transaction(ctx, func(tx *store.Gateway) error {
		repository := store.NewRepository[T](tx)
		row, err := repository.FindByKey(ctx, id)
		if err != nil {
			return err
		}
		patch := req.Patch()
		if err := integrity.NewChecker(tx).CheckUpdate(ctx, *row, patch); err != nil {
			return err
		}
		if err := repository.Update(ctx, row, patch); err != nil {
			return err
		}
		fresh, err := repository.FindByKey(ctx, id)
		if err != nil {
			return err
		}
		updated = *fresh
		return nil
	})
	if err != nil {
		var zero T
		return zero, s.translate(err)
	}
	return updated, nil
}

func (s *service[T]) Delete(ctx context.Context, id int) error {
	exists, err := s.gateway.Exists(ctx, s.entity.Table, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFound(s.entity.Label)
	}
	return s.translate(s.repository.Delete(ctx, id))
}

// translate maps storage sentinels onto client errors. Anything else is
// returned unchanged and ends up as a 500.
func (s *service[T]) translate(err error) error {
	return Translate(err, s.entity.Label)
}

func Translate(err error, label string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return domain.NotFound(label)
	case errors.Is(err, store.ErrDuplicatedKey):
		return domain.Conflict(fmt.Sprintf("the %s conflicts with an existing row", label))
	case errors.Is(err, store.ErrForeignKeyFailed):
		return &domain.Error{Kind: domain.KindInvalidReference, Message: fmt.Sprintf("the %s references a row that does not exist", label)}
	default:
		return err
	}
}
