// Package store is the only package that talks to the database. Repository
// gives typed access to one entity; Gateway works on tables by name and
// carries the registry-driven operations: cascading delete, association
// replacement, conflict lookups and id generation.
package store

import (
	"context"
	"errors"
	"fmt"

	"Recetas-Backend/pkg/schema"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrUnknownRelation  = errors.New("unknown association")
	ErrNotManyToMany    = errors.New("association is not many-to-many")
	ErrDuplicatedKey    = gorm.ErrDuplicatedKey
	ErrForeignKeyFailed = gorm.ErrForeignKeyViolated
)

type Gateway struct {
	db       *gorm.DB
	registry *schema.Registry
}

func NewGateway(db *gorm.DB, registry *schema.Registry) *Gateway {
	return &Gateway{db: db, registry: registry}
}

func (g *Gateway) DB() *gorm.DB { return g.db }

func (g *Gateway) Registry() *schema.Registry { return g.registry }

// Transaction runs fn against a gateway bound to a single database
// transaction. Every call made through tx observes the writes made before it.
func (g *Gateway) Transaction(ctx context.Context, fn func(tx *Gateway) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Gateway{db: tx, registry: g.registry})
	})
}

func (g *Gateway) Exists(ctx context.Context, table string, id any) (bool, error) {
	var count int64
	if err := g.db.WithContext(ctx).Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking %s %v: %w", table, id, err)
	}
	return count > 0, nil
}

// CountIn counts the rows of table whose id is one of ids.
func (g *Gateway) CountIn(ctx context.Context, table string, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	if err := g.db.WithContext(ctx).Table(table).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return count, nil
}

// CountClaimed counts the rows of table among ids whose column points at
// something other than owner.
func (g *Gateway) CountClaimed(ctx context.Context, table string, ids []int, column string, owner int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := g.db.WithContext(ctx).
		Table(table).
		Where("id IN ?", ids).
		Where(clause.Neq{Column: clause.Column{Name: column}, Value: owner}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return count, nil
}

// FindConflict reports whether a row other than excludeID matches every
// column of where. A zero excludeID excludes nothing.
func (g *Gateway) FindConflict(ctx context.Context, table string, where map[string]any, excludeID int) (bool, error) {
	q := g.db.WithContext(ctx).Table(table).Where(where)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking uniqueness on %s: %w", table, err)
	}
	return count > 0, nil
}

// NextID returns max(id)+1 for table, or 1 when it is empty.
func (g *Gateway) NextID(ctx context.Context, table string) (int, error) {
	var top int
	if err := g.db.WithContext(ctx).Table(table).Select("COALESCE(MAX(id), 0)").Scan(&top).Error; err != nil {
		return 0, fmt.Errorf("reading next id of %s: %w", table, err)
	}
	return top + 1, nil
}

// AssignIDs fills the zero entries of ids with fresh keys that collide
// neither with stored rows nor with the non-zero entries.
func (g *Gateway) AssignIDs(ctx context.Context, table string, ids []int) error {
	missing := false
	next := 0
	for _, id := range ids {
		if id == 0 {
			missing = true
		}
		if id >= next {
			next = id + 1
		}
	}
	if !missing {
		return nil
	}
	stored, err := g.NextID(ctx, table)
	if err != nil {
		return err
	}
	if stored > next {
		next = stored
	}
	for i := range ids {
		if ids[i] == 0 {
			ids[i] = next
			next++
		}
	}
	return nil
}

// DeleteCascade removes the row and, depth first, every row that references
// it through a registered foreign key.
func (g *Gateway) DeleteCascade(ctx context.Context, table string, id int) error {
	return g.Transaction(ctx, func(tx *Gateway) error {
		return tx.deleteTree(ctx, table, []int{id})
	})
}

func (g *Gateway) deleteTree(ctx context.Context, table string, ids []int) error {
	for _, dep := range g.registry.Dependents(table) {
		var childIDs []int
		err := g.db.WithContext(ctx).
			Table(dep.Table).
			Where(map[string]any{dep.Column: ids}).
			Pluck("id", &childIDs).Error
		if err != nil {
			return fmt.Errorf("collecting %s of %s: %w", dep.Table, table, err)
		}
		if len(childIDs) == 0 {
			continue
		}
		if err := g.deleteTree(ctx, dep.Table, childIDs); err != nil {
			return err
		}
	}
	return g.deleteWhere(ctx, table, "id", ids)
}

func (g *Gateway) deleteWhere(ctx context.Context, table, column string, values any) error {
	err := g.db.WithContext(ctx).Exec(
		"DELETE FROM ? WHERE ? IN ?",
		clause.Table{Name: table}, clause.Column{Name: column}, values,
	).Error
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	return nil
}

// DeleteChildren removes every row of table whose column equals parentID.
// Rows referencing the removed ones are cascaded as well.
func (g *Gateway) DeleteChildren(ctx context.Context, table, column string, parentID int) error {
	var ids []int
	err := g.db.WithContext(ctx).Table(table).Where(map[string]any{column: parentID}).Pluck("id", &ids).Error
	if err != nil {
		return fmt.Errorf("collecting %s: %w", table, err)
	}
	if len(ids) == 0 {
		return nil
	}
	return g.deleteTree(ctx, table, ids)
}

// SetAssociation makes the junction rows of the named many-to-many edge of
// parentID match childIDs exactly. Rows already present keep their ids.
func (g *Gateway) SetAssociation(ctx context.Context, parentTable, name string, parentID int, childIDs []int) error {
	a, ok := g.registry.Association(parentTable, name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownRelation, parentTable, name)
	}
	if a.Kind != schema.ManyToMany {
		return fmt.Errorf("%w: %s.%s", ErrNotManyToMany, parentTable, name)
	}

	wanted := make(map[int]bool, len(childIDs))
	ordered := make([]int, 0, len(childIDs))
	for _, id := range childIDs {
		if !wanted[id] {
			wanted[id] = true
			ordered = append(ordered, id)
		}
	}

	var existing []int
	err := g.db.WithContext(ctx).
		Table(a.Junction).
		Where(map[string]any{a.ParentKey: parentID}).
		Pluck(a.ChildKey, &existing).Error
	if err != nil {
		return fmt.Errorf("reading %s: %w", a.Junction, err)
	}

	have := make(map[int]bool, len(existing))
	var stale []int
	for _, id := range existing {
		have[id] = true
		if !wanted[id] {
			stale = append(stale, id)
		}
	}
	if len(stale) > 0 {
		err := g.db.WithContext(ctx).Exec(
			"DELETE FROM ? WHERE ? = ? AND ? IN ?",
			clause.Table{Name: a.Junction},
			clause.Column{Name: a.ParentKey}, parentID,
			clause.Column{Name: a.ChildKey}, stale,
		).Error
		if err != nil {
			return fmt.Errorf("pruning %s: %w", a.Junction, err)
		}
	}

	var added []int
	for _, id := range ordered {
		if !have[id] {
			added = append(added, id)
		}
	}
	if len(added) == 0 {
		return nil
	}

	ids := make([]int, len(added))
	if err := g.AssignIDs(ctx, a.Junction, ids); err != nil {
		return err
	}
	rows := make([]map[string]any, 0, len(added))
	for i, childID := range added {
		rows = append(rows, map[string]any{
			"id":        ids[i],
			a.ParentKey: parentID,
			a.ChildKey:  childID,
		})
	}
	if err := g.db.WithContext(ctx).Table(a.Junction).Create(rows).Error; err != nil {
		return fmt.Errorf("inserting into %s: %w", a.Junction, err)
	}
	return nil
}
