package render

import (
	"fmt"

	"github.com/sr9000dev/ddbmapper/internal/plan"
)

// collectionSetStmt renders the ToItem statement(s) for a List/Map/Set
// member. A nullable collection field (*[]T, *map[string]T) is guarded with
// a nil check, since the ddbitem Set* helpers take the dereferenced value
// type, not a pointer.
func (b *builder) collectionSetStmt(m plan.MemberSpec, srcExpr string) []string {
	if m.Nullable {
		return b.nullableCollectionSetStmt(m, srcExpr)
	}

	return b.rawCollectionSetStmt(m, srcExpr)
}

func (b *builder) nullableCollectionSetStmt(m plan.MemberSpec, srcExpr string) []string {
	key := fmt.Sprintf("%q", m.AttributeKey)
	inner := b.rawCollectionSetStmt(m, "(*"+srcExpr+")")

	lines := append([]string{fmt.Sprintf("if %s != nil {", srcExpr)}, inner...)

	if m.OmitNull {
		lines = append(lines, "}")
	} else {
		b.addImport("github.com/aws/aws-sdk-go-v2/service/dynamodb/types")
		lines = append(lines, "} else {", fmt.Sprintf("item[%s] = &types.AttributeValueMemberNULL{Value: true}", key), "}")
	}

	return lines
}

func (b *builder) rawCollectionSetStmt(m plan.MemberSpec, srcExpr string) []string {
	c := m.Collection
	key := fmt.Sprintf("%q", m.AttributeKey)

	switch c.Category {
	case plan.CollectionSet:
		switch c.SetKind {
		case plan.SetElemString:
			return []string{fmt.Sprintf("ddbitem.SetStringSet(item, %s, %s)", key, srcExpr)}
		case plan.SetElemNumber:
			return []string{fmt.Sprintf("ddbitem.SetNumberSet(item, %s, %s)", key, srcExpr)}
		default:
			return []string{fmt.Sprintf("// binary sets are not constructible via ddbitem.Set[T] (T must be comparable); %s skipped", m.FieldName)}
		}

	case plan.CollectionMap:
		b.addImport("github.com/aws/aws-sdk-go-v2/service/dynamodb/types")
		encode := b.elementEncodeFunc(m)

		return []string{fmt.Sprintf("ddbitem.SetMap(item, %s, %s, %s, %s)", key, srcExpr, boolLit(m.OmitEmptyString), encode)}

	default: // CollectionList
		b.addImport("github.com/aws/aws-sdk-go-v2/service/dynamodb/types")
		encode := b.elementEncodeFunc(m)
		elemExpr := srcExpr

		if c.IsArray {
			elemExpr = srcExpr + "[:]"
		}

		return []string{fmt.Sprintf("ddbitem.SetList(item, %s, %s, %s, %s)", key, elemExpr, boolLit(m.OmitEmptyString), encode)}
	}
}

// collectionGetStmt renders the FromItem decode statement(s) for a
// List/Map/Set member. A nullable collection field decodes into a plain
// local value first, then takes its address, since the ddbitem Get* helpers
// never return a pointer themselves.
func (b *builder) collectionGetStmt(m plan.MemberSpec, v string) (varName string, lines []string) {
	if m.Nullable {
		return b.nullableCollectionGetStmt(m, v)
	}

	return b.rawCollectionGetStmt(m, v)
}

func (b *builder) nullableCollectionGetStmt(m plan.MemberSpec, v string) (string, []string) {
	raw := v + "Raw"

	_, rawLines := b.rawCollectionGetStmt(m, raw)

	key := fmt.Sprintf("%q", m.AttributeKey)
	req := reqExpr(m.Requiredness)
	presence := v + "Present"

	lines := []string{
		fmt.Sprintf("%s, err := ddbitem.Present(item, %s, %s)", presence, key, req),
		"if err != nil { return out, err }",
		fmt.Sprintf("var %s %s", v, b.typeString(m.GoType)),
		fmt.Sprintf("if %s {", presence),
	}
	lines = append(lines, rawLines...)
	lines = append(lines, fmt.Sprintf("%s = &%s", v, raw), "}")

	return v, lines
}

func (b *builder) rawCollectionGetStmt(m plan.MemberSpec, v string) (varName string, lines []string) {
	c := m.Collection
	key := fmt.Sprintf("%q", m.AttributeKey)
	req := reqExpr(m.Requiredness)

	switch c.Category {
	case plan.CollectionSet:
		switch c.SetKind {
		case plan.SetElemString:
			return v, []string{
				fmt.Sprintf("%s, err := ddbitem.GetStringSet(item, %s, %s)", v, key, req),
				"if err != nil { return out, err }",
			}
		case plan.SetElemNumber:
			tparam := b.typeString(c.ElementType)

			return v, []string{
				fmt.Sprintf("%s, err := ddbitem.GetNumberSet[%s](item, %s, %s)", v, tparam, key, req),
				"if err != nil { return out, err }",
			}
		default:
			return v, []string{fmt.Sprintf("var %s ddbitem.Set[[]byte] // binary sets unsupported, see design notes", v)}
		}

	case plan.CollectionMap:
		b.addImport("github.com/aws/aws-sdk-go-v2/service/dynamodb/types")
		decode := b.elementDecodeFunc(m)

		return v, []string{
			fmt.Sprintf("%s, err := ddbitem.GetMap(item, %s, %s, %s)", v, key, req, decode),
			"if err != nil { return out, err }",
		}

	default: // CollectionList
		b.addImport("github.com/aws/aws-sdk-go-v2/service/dynamodb/types")
		decode := b.elementDecodeFunc(m)

		if !c.IsArray {
			return v, []string{
				fmt.Sprintf("%s, err := ddbitem.GetList(item, %s, %s, %s)", v, key, req, decode),
				"if err != nil { return out, err }",
			}
		}

		raw := v + "Raw"
		arrType := b.typeString(derefType(m.GoType))

		return v, []string{
			fmt.Sprintf("%s, err := ddbitem.GetList(item, %s, %s, %s)", raw, key, req, decode),
			"if err != nil { return out, err }",
			fmt.Sprintf("var %s %s", v, arrType),
			fmt.Sprintf("copy(%s[:], %s)", v, raw),
		}
	}
}

// elementEncodeFunc builds the per-element encode closure SetList/SetMap
// need, for either a scalar/enum element or a nested-object element
// delegated to another mapper's ToItem.
func (b *builder) elementEncodeFunc(m plan.MemberSpec) string {
	c := m.Collection

	if c.ElementNested != nil {
		return b.nestedElementEncodeFunc(c)
	}

	elemType := b.typeString(c.ElementType)
	expr := b.rawElementEncodeExpr(c.ElementStrat, "v")

	return fmt.Sprintf("func(v %s) types.AttributeValue { return %s }", elemType, expr)
}

// elementDecodeFunc is elementEncodeFunc's inverse.
func (b *builder) elementDecodeFunc(m plan.MemberSpec) string {
	c := m.Collection

	if c.ElementNested != nil {
		return b.nestedElementDecodeFunc(c)
	}

	elemType := b.typeString(c.ElementType)
	body := b.rawElementDecodeBody(c.ElementStrat, elemType)

	return fmt.Sprintf("func(av types.AttributeValue) (%s, error) { %s }", elemType, body)
}
