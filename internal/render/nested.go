package render

import (
	"fmt"

	"github.com/sr9000dev/ddbmapper/internal/plan"
)

// nestedSetStmt renders the ToItem statement(s) for a nested-object member,
// delegated or inline (spec.md §4.5).
func (b *builder) nestedSetStmt(m plan.MemberSpec, srcExpr string) []string {
	if m.Nested.Kind == plan.NestedDelegated {
		return b.delegatedSetStmt(m, srcExpr)
	}

	return b.inlineSetStmt(m, srcExpr)
}

func (b *builder) delegatedSetStmt(m plan.MemberSpec, srcExpr string) []string {
	delegateType := m.Nested.Delegate.Name
	key := fmt.Sprintf("%q", m.AttributeKey)

	if !m.Nullable {
		return []string{fmt.Sprintf("ddbitem.SetNestedItem(item, %s, %s{}.ToItem(%s))", key, delegateType, srcExpr)}
	}

	lines := []string{
		fmt.Sprintf("if %s != nil {", srcExpr),
		fmt.Sprintf("ddbitem.SetNestedItem(item, %s, %s{}.ToItem(*%s))", key, delegateType, srcExpr),
	}

	if m.OmitNull {
		lines = append(lines, "}")
	} else {
		b.addImport("github.com/aws/aws-sdk-go-v2/service/dynamodb/types")
		lines = append(lines, "} else {", fmt.Sprintf("item[%s] = &types.AttributeValueMemberNULL{Value: true}", key), "}")
	}

	return lines
}

func (b *builder) inlineSetStmt(m plan.MemberSpec, srcExpr string) []string {
	base := srcExpr

	var lines []string

	if m.Nullable {
		base = "(*" + srcExpr + ")"
	}

	for _, prop := range m.Nested.Inline.Props {
		lines = append(lines, b.memberSetStmt(prop, base+"."+prop.FieldName)...)
	}

	if !m.Nullable {
		return lines
	}

	// A nil inline-expanded pointer has no per-field data to flatten, so its
	// attribute keys are simply omitted rather than individually NULLed.
	wrapped := []string{fmt.Sprintf("if %s != nil {", srcExpr)}
	wrapped = append(wrapped, lines...)
	wrapped = append(wrapped, "}")

	return wrapped
}

// nestedGetStmt renders the FromItem decode statement(s) for a
// nested-object member.
func (b *builder) nestedGetStmt(m plan.MemberSpec, v string) (varName string, lines []string) {
	if m.Nested.Kind == plan.NestedDelegated {
		return b.delegatedGetStmt(m, v)
	}

	return b.inlineGetStmt(m, v)
}

func (b *builder) delegatedGetStmt(m plan.MemberSpec, v string) (string, []string) {
	delegateType := m.Nested.Delegate.Name
	key := fmt.Sprintf("%q", m.AttributeKey)
	req := reqExpr(m.Requiredness)
	itemVar := v + "Item"

	if !m.Nullable {
		return v, []string{
			fmt.Sprintf("%s, err := ddbitem.GetNestedItem(item, %s, %s)", itemVar, key, req),
			"if err != nil { return out, err }",
			fmt.Sprintf("%s, err := %s{}.FromItem(%s)", v, delegateType, itemVar),
			"if err != nil { return out, err }",
		}
	}

	modelType := b.typeString(derefType(m.GoType))

	return v, []string{
		fmt.Sprintf("%s, err := ddbitem.GetNestedItem(item, %s, %s)", itemVar, key, req),
		"if err != nil { return out, err }",
		fmt.Sprintf("var %s *%s", v, modelType),
		fmt.Sprintf("if %s != nil {", itemVar),
		fmt.Sprintf("decoded, err := %s{}.FromItem(%s)", delegateType, itemVar),
		"if err != nil { return out, err }",
		fmt.Sprintf("%s = &decoded", v),
		"}",
	}
}

func (b *builder) inlineGetStmt(m plan.MemberSpec, v string) (string, []string) {
	var lines []string

	fieldExprs := make([]string, 0, len(m.Nested.Inline.Props))

	for _, prop := range m.Nested.Inline.Props {
		propVar := loweredVar(m.FieldName + prop.FieldName)
		_, propLines := b.memberGetStmt(prop, propVar)
		lines = append(lines, propLines...)
		fieldExprs = append(fieldExprs, fmt.Sprintf("%s: %s", prop.FieldName, propVar))
	}

	modelType := b.typeString(derefType(m.GoType))

	if !m.Nullable {
		lines = append(lines, fmt.Sprintf("%s := %s{%s}", v, modelType, joinCommas(fieldExprs)))

		return v, lines
	}

	lines = append(lines, fmt.Sprintf("%sVal := %s{%s}", v, modelType, joinCommas(fieldExprs)))
	lines = append(lines, fmt.Sprintf("%s := &%sVal", v, v))

	return v, lines
}

func joinCommas(parts []string) string {
	out := ""

	for i, p := range parts {
		if i > 0 {
			out += ", "
		}

		out += p
	}

	return out
}

// nestedElementEncodeFunc builds a List/Map encode closure for a
// delegated-mapper nested element. Inline-expanded nested elements are not
// supported inside a collection (spec.md §4.4/§4.5 interaction left
// unspecified): for such an element the generated encode closure returns a
// nil attribute value, marked with a comment, and the decode closure returns
// an error.
func (b *builder) nestedElementEncodeFunc(c *plan.CollectionInfo) string {
	elemType := b.typeString(c.ElementType)

	if c.ElementNested.Kind != plan.NestedDelegated {
		return fmt.Sprintf("func(v %s) types.AttributeValue { return nil /* inline nested elements unsupported */ }", elemType)
	}

	delegateType := c.ElementNested.Delegate.Name

	return fmt.Sprintf("func(v %s) types.AttributeValue { return &types.AttributeValueMemberM{Value: %s{}.ToItem(v)} }", elemType, delegateType)
}

// nestedElementDecodeFunc is nestedElementEncodeFunc's inverse.
func (b *builder) nestedElementDecodeFunc(c *plan.CollectionInfo) string {
	elemType := b.typeString(c.ElementType)
	b.addImport("fmt")

	if c.ElementNested.Kind != plan.NestedDelegated {
		return fmt.Sprintf(
			"func(av types.AttributeValue) (%s, error) { return %s{}, fmt.Errorf(\"inline nested elements unsupported\") }",
			elemType, elemType,
		)
	}

	delegateType := c.ElementNested.Delegate.Name

	return fmt.Sprintf(
		"func(av types.AttributeValue) (%s, error) { m, ok := av.(*types.AttributeValueMemberM); if !ok { return %s{}, fmt.Errorf(\"want M\") }; return %s{}.FromItem(m.Value) }",
		elemType, elemType, delegateType,
	)
}
