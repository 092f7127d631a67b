package scan

import (
	"go/types"
)

// TypeID identifies a named Go type by its defining package path and
// identifier, the same identity scheme the teacher's analyzer uses to key
// its TypeGraph.
type TypeID struct {
	PkgPath string
	Name    string
}

func (id TypeID) String() string {
	return id.PkgPath + "." + id.Name
}

// FieldInfo is one exported struct field considered for mapping.
type FieldInfo struct {
	Name     string
	Type     types.Type
	Tag      string
	Index    int
	Embedded bool
}

// Nullable reports whether the field's declared type is a single-level
// pointer, the Go stand-in for spec.md's reference-nullable / value-nullable
// member classification (spec.md §9).
func (f FieldInfo) Nullable() bool {
	_, ok := f.Type.(*types.Pointer)

	return ok
}

// Underlying strips a single pointer indirection, matching spec.md §3's
// "underlying type (type with any single-level nullable wrapper removed)".
func (f FieldInfo) Underlying() types.Type {
	if p, ok := f.Type.(*types.Pointer); ok {
		return p.Elem()
	}

	return f.Type
}

// StructInfo is a scanned model type: its identity, its *types.Named (for
// method-set lookups), and its exported fields in declaration order.
type StructInfo struct {
	ID     TypeID
	Named  *types.Named
	Struct *types.Struct
	Fields []FieldInfo
}

// FieldByName returns the field with the given declared name, if present.
func (s StructInfo) FieldByName(name string) (FieldInfo, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return FieldInfo{}, false
}
