package render

import (
	"fmt"
	"strings"

	"github.com/sr9000dev/ddbmapper/internal/plan"
)

// memberSetStmt dispatches one member's ToItem statement(s) by shape:
// custom serializer, scalar/enum, collection, or nested object.
func (b *builder) memberSetStmt(m plan.MemberSpec, srcExpr string) []string {
	if !m.EmitToItem {
		return nil
	}

	key := fmt.Sprintf("%q", m.AttributeKey)

	switch {
	case m.CustomSerializeMethod != "":
		owner := srcExpr[:strings.LastIndex(srcExpr, ".")]

		return []string{fmt.Sprintf("item[%s] = %s.%s()", key, owner, m.CustomSerializeMethod)}

	case m.Scalar != nil:
		return []string{b.scalarSetStmt(m, srcExpr)}

	case m.Collection != nil:
		return b.collectionSetStmt(m, srcExpr)

	case m.Nested != nil:
		return b.nestedSetStmt(m, srcExpr)

	default:
		return []string{fmt.Sprintf("// %s: unresolved member shape", m.FieldName)}
	}
}

// memberGetStmt dispatches one member's FromItem decode statement(s),
// returning the local variable name the caller assembles into out.
func (b *builder) memberGetStmt(m plan.MemberSpec, v string) (string, []string) {
	if !m.EmitFromItem {
		return "", nil
	}

	key := fmt.Sprintf("%q", m.AttributeKey)

	switch {
	case m.CustomDeserializeMethod != "":
		return v, []string{
			fmt.Sprintf("%s, err := %s(item[%s])", v, m.CustomDeserializeMethod, key),
			"if err != nil { return out, err }",
		}

	case m.Scalar != nil:
		return b.scalarGetStmt(m, v)

	case m.Collection != nil:
		return b.collectionGetStmt(m, v)

	case m.Nested != nil:
		return b.nestedGetStmt(m, v)

	default:
		return "", []string{fmt.Sprintf("// %s: unresolved member shape", m.FieldName)}
	}
}

// toItemLines builds the full ToItem method body, one member at a time in
// declaration order, bracketed by the optional BeforeToItem/AfterToItem
// lifecycle hooks (spec.md §6).
func (b *builder) toItemLines() []string {
	var lines []string

	if b.plan.Hooks.HasBeforeToItem {
		lines = append(lines, "src.BeforeToItem(item)")
	}

	for _, m := range b.plan.Members {
		lines = append(lines, b.memberSetStmt(m, "src."+m.FieldName)...)
	}

	if b.plan.Hooks.HasAfterToItem {
		lines = append(lines, "src.AfterToItem(item)")
	}

	return lines
}

// fromItemLines builds the full FromItem method body: decode every member
// into a local variable, then assemble `out` either via a struct literal
// (property-style construction) or via the selected constructor function
// plus post-construction assignment for any field it left unset.
func (b *builder) fromItemLines() []string {
	var lines []string

	if b.plan.Hooks.HasBeforeFromItem {
		lines = append(lines, "if err := out.BeforeFromItem(item); err != nil { return out, err }")
	}

	varByField := make(map[string]string, len(b.plan.Members))

	for _, m := range b.plan.Members {
		if !m.EmitFromItem {
			continue
		}

		v := loweredVar(m.FieldName)

		varName, decodeLines := b.memberGetStmt(m, v)
		lines = append(lines, decodeLines...)

		if varName != "" {
			varByField[m.FieldName] = varName
		}
	}

	cp := b.plan.Constructor
	modelType := b.plan.ModelName

	if cp.UsesPropertyStyle || cp.FuncName == "" {
		if len(varByField) > 0 {
			lines = append(lines, buildPropertyLiteral(modelType, b.plan.Members, varByField))
		}
	} else {
		args := make([]string, len(cp.ParamOrder))

		for i, field := range cp.ParamFields {
			if v, ok := varByField[field]; ok {
				args[i] = v
			} else {
				args[i] = "/* unmatched */ nil"
			}
		}

		lines = append(lines, fmt.Sprintf("out = %s(%s)", cp.FuncName, joinCommas(args)))

		for _, m := range b.plan.Members {
			if m.Construction != plan.PostConstructionAssignment {
				continue
			}

			if v, ok := varByField[m.FieldName]; ok {
				lines = append(lines, fmt.Sprintf("out.%s = %s", m.FieldName, v))
			}
		}
	}

	if b.plan.Hooks.HasAfterFromItem {
		lines = append(lines, "if err := out.AfterFromItem(item); err != nil { return out, err }")
	}

	return lines
}

func buildPropertyLiteral(modelType string, members []plan.MemberSpec, varByField map[string]string) string {
	var fields []string

	for _, m := range members {
		v, ok := varByField[m.FieldName]
		if !ok {
			continue
		}

		fields = append(fields, fmt.Sprintf("%s: %s", m.FieldName, v))
	}

	return fmt.Sprintf("out = %s{%s}", modelType, joinCommas(fields))
}
