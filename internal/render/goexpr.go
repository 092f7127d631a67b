package render

import (
	"go/types"
	"strings"
)

// typeString renders t as Go source valid within the generated file's own
// package, qualifying identifiers that come from elsewhere and recording
// the import as a side effect.
func (b *builder) typeString(t types.Type) string {
	return types.TypeString(t, b.qualifier)
}

func (b *builder) qualifier(pkg *types.Package) string {
	if pkg == nil || pkg.Path() == b.plan.ModelPkgPath {
		return ""
	}

	b.addImport(pkg.Path())

	return pkg.Name()
}

// qualifiedIdent renders a package-level identifier (an enum constant, a
// constructor function name) as Go source, eliding the package prefix when
// it is the model's own package.
func (b *builder) qualifiedIdent(pkg *types.Package, name string) string {
	if pkg == nil || pkg.Path() == b.plan.ModelPkgPath {
		return name
	}

	b.addImport(pkg.Path())

	return pkg.Name() + "." + name
}

// derefType strips one pointer level, for rendering the value type of a
// nullable field whose GoType carries the pointer.
func derefType(t types.Type) types.Type {
	if p, ok := t.(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}

// loweredVar derives a private local variable name from an exported field
// name: "ID" -> "vID", "CreatedAt" -> "vCreatedAt". The "v" prefix avoids
// colliding with a field named the same as a Go builtin or keyword.
func loweredVar(fieldName string) string {
	var b strings.Builder

	b.WriteByte('v')
	b.WriteString(fieldName)

	return b.String()
}
