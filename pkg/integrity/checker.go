// Package integrity runs the checks every write must pass before it reaches
// storage. Checks run in a fixed order and the first failure wins:
// foreign keys, primary key, then unique constraints by kind (plain values,
// association pairs, orderings).
package integrity

import (
	"context"
	"reflect"
	"sort"

	"Recetas-Backend/domain"
	"Recetas-Backend/pkg/schema"
	"Recetas-Backend/pkg/store"
)

type Checker struct {
	gateway *store.Gateway
}

func NewChecker(gateway *store.Gateway) *Checker {
	return &Checker{gateway: gateway}
}

// CheckCreate validates a row about to be inserted into table.
func (c *Checker) CheckCreate(ctx context.Context, table string, values map[string]any) error {
	entity := c.gateway.Registry().MustEntity(table)

	if err := c.checkForeignKeys(ctx, entity, values, nil); err != nil {
		return err
	}

	if id, ok := normalize(values["id"]).(int); ok && id != 0 {
		exists, err := c.gateway.Exists(ctx, table, id)
		if err != nil {
			return err
		}
		if exists {
			return domain.DuplicateKey(entity.Label, id)
		}
	}

	return c.checkUnique(ctx, entity, values, nil, 0)
}

// CheckUpdate validates patch applied to current. Only foreign keys named in
// patch are resolved, and only unique constraints touching a patched column
// are checked, against every row but current.
func (c *Checker) CheckUpdate(ctx context.Context, current schema.Model, patch map[string]any) error {
	entity := c.gateway.Registry().MustEntity(current.TableName())

	if err := c.checkForeignKeys(ctx, entity, patch, patch); err != nil {
		return err
	}

	merged := current.Values()
	for col, v := range patch {
		merged[col] = v
	}
	return c.checkUnique(ctx, entity, merged, patch, current.PrimaryKey())
}

// CheckIDs fails unless every id names a row of table. Repeated ids count once.
func (c *Checker) CheckIDs(ctx context.Context, table string, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	distinct := dedupe(ids)
	count, err := c.gateway.CountIn(ctx, table, distinct)
	if err != nil {
		return err
	}
	if count != int64(len(distinct)) {
		return domain.UnknownIDs(c.gateway.Registry().MustEntity(table).Label)
	}
	return nil
}

func (c *Checker) checkForeignKeys(ctx context.Context, entity *schema.Entity, values, only map[string]any) error {
	for _, fk := range entity.ForeignKeys {
		if only != nil {
			if _, ok := only[fk.Column]; !ok {
				continue
			}
		}
		v := normalize(values[fk.Column])
		if v == nil {
			continue
		}
		exists, err := c.gateway.Exists(ctx, fk.Parent, v)
		if err != nil {
			return err
		}
		if !exists {
			return domain.InvalidReference(fk.Label, v)
		}
	}
	return nil
}

func (c *Checker) checkUnique(ctx context.Context, entity *schema.Entity, values, touched map[string]any, excludeID int) error {
	constraints := make([]schema.UniqueConstraint, len(entity.Unique))
	copy(constraints, entity.Unique)
	sort.SliceStable(constraints, func(i, j int) bool {
		return constraints[i].Kind < constraints[j].Kind
	})

	for _, u := range constraints {
		if touched != nil && !touches(u, touched) {
			continue
		}
		where := make(map[string]any, len(u.Columns))
		for _, col := range u.Columns {
			v := normalize(values[col])
			if v == nil {
				// NULL never collides.
				where = nil
				break
			}
			where[col] = v
		}
		if where == nil {
			continue
		}
		conflict, err := c.gateway.FindConflict(ctx, entity.Table, where, excludeID)
		if err != nil {
			return err
		}
		if conflict {
			return domain.Conflict(u.Message)
		}
	}
	return nil
}

func touches(u schema.UniqueConstraint, patch map[string]any) bool {
	for _, col := range u.Columns {
		if _, ok := patch[col]; ok {
			return true
		}
	}
	return false
}

// normalize dereferences pointers so that a typed nil reads as nil.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func dedupe(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
