// Package schema describes the relational model the service persists: the
// entities, their foreign keys and unique constraints, and the associations
// between them. It holds no behavior beyond lookups over that description.
package schema

// Model is implemented by every persisted entity.
type Model interface {
	TableName() string
	PrimaryKey() int
	// Values returns the persisted columns keyed by column name.
	Values() map[string]any
}

type FieldType int

const (
	TypeInteger FieldType = iota + 1
	TypeString
	TypeDate
)

func (t FieldType) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeString:
		return "string"
	case TypeDate:
		return "date"
	default:
		return "unknown"
	}
}

type Field struct {
	Column   string
	Type     FieldType
	Nullable bool
}

// ForeignKey is a column on the owning (many) side pointing at the primary
// key of Parent.
type ForeignKey struct {
	Column string
	Parent string
	// Label names the referenced entity in error messages.
	Label string
}

// UniqueKind orders the uniqueness checks run before a write.
type UniqueKind int

const (
	UniqueValue UniqueKind = iota + 1
	UniqueAssociation
	UniqueOrdering
)

type UniqueConstraint struct {
	Columns []string
	Kind    UniqueKind
	Message string
}

type Entity struct {
	Table       string
	Label       string
	Fields      []Field
	ForeignKeys []ForeignKey
	Unique      []UniqueConstraint
}

// ForeignKey returns the foreign key declared on column.
func (e *Entity) ForeignKey(column string) (ForeignKey, bool) {
	for _, fk := range e.ForeignKeys {
		if fk.Column == column {
			return fk, true
		}
	}
	return ForeignKey{}, false
}

func (e *Entity) Field(column string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Column == column {
			return f, true
		}
	}
	return Field{}, false
}

type AssociationKind int

const (
	OneToMany AssociationKind = iota + 1
	ManyToMany
)

func (k AssociationKind) String() string {
	if k == ManyToMany {
		return "N:M"
	}
	return "1:N"
}

// Association is a read-navigation edge. For OneToMany, ForeignKey lives on
// Child. For ManyToMany, Junction carries ParentKey and ChildKey.
type Association struct {
	Name       string
	Kind       AssociationKind
	Parent     string
	Child      string
	ForeignKey string
	Junction   string
	ParentKey  string
	ChildKey   string
}

// Dependent is a child table whose rows reference a parent through Column.
type Dependent struct {
	Table  string
	Column string
}
