package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntities() []*Entity {
	return []*Entity{
		{
			Table:  "authors",
			Label:  "author",
			Fields: []Field{{Column: "id", Type: TypeInteger}, {Column: "name", Type: TypeString}},
			Unique: []UniqueConstraint{{Columns: []string{"name"}, Kind: UniqueValue, Message: "taken"}},
		},
		{
			Table:  "tags",
			Label:  "tag",
			Fields: []Field{{Column: "id", Type: TypeInteger}},
		},
		{
			Table:       "books",
			Label:       "book",
			Fields:      []Field{{Column: "id", Type: TypeInteger}, {Column: "id_author", Type: TypeInteger}},
			ForeignKeys: []ForeignKey{{Column: "id_author", Parent: "authors", Label: "author"}},
		},
		{
			Table:  "book_tags",
			Label:  "book tag",
			Fields: []Field{{Column: "id", Type: TypeInteger}, {Column: "id_book", Type: TypeInteger}, {Column: "id_tag", Type: TypeInteger}},
			ForeignKeys: []ForeignKey{
				{Column: "id_tag", Parent: "tags", Label: "tag"},
				{Column: "id_book", Parent: "books", Label: "book"},
			},
		},
	}
}

func testAssociations() []Association {
	return []Association{
		{Name: "Books", Kind: OneToMany, Parent: "authors", Child: "books", ForeignKey: "id_author"},
		{Name: "Tags", Kind: ManyToMany, Parent: "books", Child: "tags", Junction: "book_tags", ParentKey: "id_book", ChildKey: "id_tag"},
	}
}

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry(testEntities(), testAssociations())
	require.NoError(t, err)

	e, ok := r.Entity("books")
	require.True(t, ok)
	assert.Equal(t, "book", e.Label)

	_, ok = r.Entity("missing")
	assert.False(t, ok)

	a, ok := r.Association("books", "Tags")
	require.True(t, ok)
	assert.Equal(t, ManyToMany, a.Kind)
	assert.Equal(t, "book_tags", a.Junction)

	_, ok = r.Association("authors", "Tags")
	assert.False(t, ok)

	assert.Len(t, r.Associations("authors"), 1)
	assert.Empty(t, r.Associations("tags"))
}

func TestNewRegistryRejectsInvalidSchemas(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(entities []*Entity, associations []Association) ([]*Entity, []Association)
		errorMessage string
	}{
		{
			name: "duplicate entity",
			mutate: func(e []*Entity, a []Association) ([]*Entity, []Association) {
				return append(e, &Entity{Table: "tags"}), a
			},
			errorMessage: "already registered",
		},
		{
			name: "unknown foreign key parent",
			mutate: func(e []*Entity, a []Association) ([]*Entity, []Association) {
				e[2].ForeignKeys = append(e[2].ForeignKeys, ForeignKey{Column: "id_publisher", Parent: "publishers"})
				return e, a
			},
			errorMessage: "unknown entity publishers",
		},
		{
			name: "unique on unknown column",
			mutate: func(e []*Entity, a []Association) ([]*Entity, []Association) {
				e[1].Unique = []UniqueConstraint{{Columns: []string{"slug"}, Kind: UniqueValue}}
				return e, a
			},
			errorMessage: "unknown column slug",
		},
		{
			name: "one to many without foreign key",
			mutate: func(e []*Entity, a []Association) ([]*Entity, []Association) {
				return e, append(a, Association{Name: "Tags", Kind: OneToMany, Parent: "authors", Child: "tags", ForeignKey: "id_author"})
			},
			errorMessage: "is not a foreign key",
		},
		{
			name: "many to many with wrong child key",
			mutate: func(e []*Entity, a []Association) ([]*Entity, []Association) {
				a[1].ChildKey = "id_book"
				return e, a
			},
			errorMessage: "is not a foreign key to tags",
		},
		{
			name: "association without kind",
			mutate: func(e []*Entity, a []Association) ([]*Entity, []Association) {
				return e, append(a, Association{Name: "Other", Parent: "authors", Child: "books"})
			},
			errorMessage: "has no kind",
		},
		{
			name: "cycle",
			mutate: func(e []*Entity, a []Association) ([]*Entity, []Association) {
				e[0].Fields = append(e[0].Fields, Field{Column: "id_book", Type: TypeInteger, Nullable: true})
				e[0].ForeignKeys = []ForeignKey{{Column: "id_book", Parent: "books"}}
				return e, a
			},
			errorMessage: "circular dependency detected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities, associations := tt.mutate(testEntities(), testAssociations())
			_, err := NewRegistry(entities, associations)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMessage)
		})
	}
}

func TestMustNewRegistryPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewRegistry([]*Entity{{Table: "a"}, {Table: "a"}}, nil)
	})
}

func TestDependents(t *testing.T) {
	r := MustNewRegistry(testEntities(), testAssociations())

	assert.Equal(t, []Dependent{{Table: "books", Column: "id_author"}}, r.Dependents("authors"))
	assert.Equal(t, []Dependent{{Table: "book_tags", Column: "id_book"}}, r.Dependents("books"))
	assert.Equal(t, []Dependent{{Table: "book_tags", Column: "id_tag"}}, r.Dependents("tags"))
	assert.Empty(t, r.Dependents("book_tags"))
}

func TestDependencyOrder(t *testing.T) {
	r := MustNewRegistry(testEntities(), testAssociations())
	order := r.DependencyOrder()
	require.Len(t, order, 4)

	position := make(map[string]int, len(order))
	for i, table := range order {
		position[table] = i
	}
	assert.Less(t, position["authors"], position["books"])
	assert.Less(t, position["books"], position["book_tags"])
	assert.Less(t, position["tags"], position["book_tags"])

	// The returned slice is a copy.
	order[0] = "changed"
	assert.NotEqual(t, "changed", r.DependencyOrder()[0])
}

func TestMustEntityPanicsOnUnknownTable(t *testing.T) {
	r := MustNewRegistry(testEntities(), testAssociations())
	assert.NotPanics(t, func() { r.MustEntity("tags") })
	assert.Panics(t, func() { r.MustEntity("publishers") })
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "integer", TypeInteger.String())
	assert.Equal(t, "date", TypeDate.String())
	assert.Equal(t, "unknown", FieldType(0).String())
	assert.Equal(t, "1:N", OneToMany.String())
	assert.Equal(t, "N:M", ManyToMany.String())
}
