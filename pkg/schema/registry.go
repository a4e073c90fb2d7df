package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is the immutable schema of the service. Build it once with
// NewRegistry and share it.
type Registry struct {
	entities     map[string]*Entity
	associations []Association
	order        []string
}

// NewRegistry validates the entity set and the association graph and returns
// the registry. Every foreign key must point at a registered entity, every
// association must name registered tables and the ownership graph must be
// acyclic.
func NewRegistry(entities []*Entity, associations []Association) (*Registry, error) {
	r := &Registry{
		entities:     make(map[string]*Entity, len(entities)),
		associations: associations,
	}

	for _, e := range entities {
		if _, exists := r.entities[e.Table]; exists {
			return nil, fmt.Errorf("entity %s is already registered", e.Table)
		}
		r.entities[e.Table] = e
	}

	for _, e := range entities {
		for _, fk := range e.ForeignKeys {
			if _, ok := r.entities[fk.Parent]; !ok {
				return nil, fmt.Errorf("entity %s: foreign key %s references unknown entity %s", e.Table, fk.Column, fk.Parent)
			}
		}
		for _, u := range e.Unique {
			for _, col := range u.Columns {
				if _, ok := e.Field(col); !ok {
					return nil, fmt.Errorf("entity %s: unique constraint on unknown column %s", e.Table, col)
				}
			}
		}
	}

	for _, a := range associations {
		if err := r.validateAssociation(a); err != nil {
			return nil, err
		}
	}

	order, err := r.topologicalSort()
	if err != nil {
		return nil, err
	}
	r.order = order

	return r, nil
}

// MustNewRegistry is NewRegistry for package-level declarations.
func MustNewRegistry(entities []*Entity, associations []Association) *Registry {
	r, err := NewRegistry(entities, associations)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) validateAssociation(a Association) error {
	for _, table := range []string{a.Parent, a.Child} {
		if _, ok := r.entities[table]; !ok {
			return fmt.Errorf("association %s references unknown entity %s", a.Name, table)
		}
	}

	switch a.Kind {
	case OneToMany:
		child := r.entities[a.Child]
		fk, ok := child.ForeignKey(a.ForeignKey)
		if !ok || fk.Parent != a.Parent {
			return fmt.Errorf("association %s: %s.%s is not a foreign key to %s", a.Name, a.Child, a.ForeignKey, a.Parent)
		}
	case ManyToMany:
		junction, ok := r.entities[a.Junction]
		if !ok {
			return fmt.Errorf("association %s references unknown junction %s", a.Name, a.Junction)
		}
		if fk, ok := junction.ForeignKey(a.ParentKey); !ok || fk.Parent != a.Parent {
			return fmt.Errorf("association %s: %s.%s is not a foreign key to %s", a.Name, a.Junction, a.ParentKey, a.Parent)
		}
		if fk, ok := junction.ForeignKey(a.ChildKey); !ok || fk.Parent != a.Child {
			return fmt.Errorf("association %s: %s.%s is not a foreign key to %s", a.Name, a.Junction, a.ChildKey, a.Child)
		}
	default:
		return fmt.Errorf("association %s has no kind", a.Name)
	}
	return nil
}

// Entity returns the descriptor registered for table.
func (r *Registry) Entity(table string) (*Entity, bool) {
	e, ok := r.entities[table]
	return e, ok
}

// MustEntity panics when table is not registered.
func (r *Registry) MustEntity(table string) *Entity {
	e, ok := r.entities[table]
	if !ok {
		panic(fmt.Sprintf("schema: entity %s is not registered", table))
	}
	return e
}

// Association looks up a named edge leaving parent.
func (r *Registry) Association(parent, name string) (Association, bool) {
	for _, a := range r.associations {
		if a.Parent == parent && a.Name == name {
			return a, true
		}
	}
	return Association{}, false
}

// Associations returns every edge leaving parent.
func (r *Registry) Associations(parent string) []Association {
	var out []Association
	for _, a := range r.associations {
		if a.Parent == parent {
			out = append(out, a)
		}
	}
	return out
}

// Dependents returns every (table, column) pair whose foreign key references
// parent. Deleting a parent row deletes these rows first. The result is
// sorted so that cascades run in a stable order.
func (r *Registry) Dependents(parent string) []Dependent {
	var out []Dependent
	for _, e := range r.entities {
		for _, fk := range e.ForeignKeys {
			if fk.Parent == parent {
				out = append(out, Dependent{Table: e.Table, Column: fk.Column})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Table == out[j].Table {
			return out[i].Column < out[j].Column
		}
		return out[i].Table < out[j].Table
	})
	return out
}

// DependencyOrder lists tables parents first, safe for creating tables.
func (r *Registry) DependencyOrder() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) topologicalSort() ([]string, error) {
	names := make([]string, 0, len(r.entities))
	for name := range r.entities {
		names = append(names, name)
	}
	sort.Strings(names)

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(names))
	order := make([]string, 0, len(names))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("circular dependency detected: %s -> %s", strings.Join(path, " -> "), name)
		}
		state[name] = visiting
		path = append(path, name)

		parents := make([]string, 0)
		for _, fk := range r.entities[name].ForeignKeys {
			if fk.Parent != name {
				parents = append(parents, fk.Parent)
			}
		}
		sort.Strings(parents)
		for _, p := range parents {
			if err := visit(p, path); err != nil {
				return err
			}
		}

		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}
