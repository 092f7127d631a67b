package render

import (
	"fmt"

	"github.com/sr9000dev/ddbmapper/internal/plan"
)

func reqExpr(r plan.Requiredness) string {
	if r == plan.ReqOptional {
		return "ddbitem.Optional"
	}

	return "ddbitem.Required"
}

func boolLit(v bool) string {
	if v {
		return "true"
	}

	return "false"
}

// scalarSetStmt renders one ToItem call for a scalar (or enum) member.
// srcExpr is the Go expression holding the member's current value
// ("src.Field" at the root, "src.Parent.Field" or "(*src.Parent).Field"
// inside an inline nested block).
func (b *builder) scalarSetStmt(m plan.MemberSpec, srcExpr string) string {
	s := m.Scalar
	key := fmt.Sprintf("%q", m.AttributeKey)
	omitEmpty := boolLit(m.OmitEmptyString)
	omitNull := boolLit(m.OmitNull)

	switch s.Tag {
	case plan.TagString:
		if m.Nullable {
			return fmt.Sprintf("ddbitem.SetNullableString(item, %s, %s, %s, %s)", key, srcExpr, omitEmpty, omitNull)
		}

		return fmt.Sprintf("ddbitem.SetString(item, %s, %s, %s)", key, srcExpr, omitEmpty)

	case plan.TagBool:
		if m.Nullable {
			return fmt.Sprintf("ddbitem.SetNullableBool(item, %s, %s, %s)", key, srcExpr, omitNull)
		}

		return fmt.Sprintf("ddbitem.SetBool(item, %s, %s)", key, srcExpr)

	case plan.TagInt, plan.TagLong, plan.TagShort, plan.TagByte:
		if m.Nullable {
			return fmt.Sprintf("ddbitem.SetNullableInteger(item, %s, %s, %s)", key, srcExpr, omitNull)
		}

		return fmt.Sprintf("ddbitem.SetInteger(item, %s, %s)", key, srcExpr)

	case plan.TagFloat, plan.TagDouble:
		if m.Nullable {
			return fmt.Sprintf("ddbitem.SetNullableFloat(item, %s, %s, %s)", key, srcExpr, omitNull)
		}

		return fmt.Sprintf("ddbitem.SetFloat(item, %s, %s)", key, srcExpr)

	case plan.TagDecimal:
		if m.Nullable {
			return fmt.Sprintf("ddbitem.SetNullableDecimal(item, %s, %s, %s)", key, srcExpr, omitNull)
		}

		return fmt.Sprintf("ddbitem.SetDecimal(item, %s, %s)", key, srcExpr)

	case plan.TagDateTime, plan.TagDateTimeOffset:
		layout := fmt.Sprintf("%q", s.FormatLiteral)
		if m.Nullable {
			return fmt.Sprintf("ddbitem.SetNullableTime(item, %s, %s, %s, %s)", key, srcExpr, layout, omitNull)
		}

		return fmt.Sprintf("ddbitem.SetTime(item, %s, %s, %s)", key, srcExpr, layout)

	case plan.TagTimeSpan:
		if m.Nullable {
			return fmt.Sprintf("ddbitem.SetNullableDuration(item, %s, %s, %s)", key, srcExpr, omitNull)
		}

		return fmt.Sprintf("ddbitem.SetDuration(item, %s, %s)", key, srcExpr)

	case plan.TagUUID:
		if m.Nullable {
			return fmt.Sprintf("ddbitem.SetNullableUUID(item, %s, %s, %s)", key, srcExpr, omitNull)
		}

		return fmt.Sprintf("ddbitem.SetUUID(item, %s, %s)", key, srcExpr)

	case plan.TagEnum:
		format := b.enumFormatFunc(s)
		if m.Nullable {
			return fmt.Sprintf("ddbitem.SetNullableEnum(item, %s, %s, %s, %s)", key, srcExpr, format, omitNull)
		}

		return fmt.Sprintf("ddbitem.SetEnum(item, %s, %s, %s)", key, srcExpr, format)

	default:
		return fmt.Sprintf("// unresolved scalar tag for %s", m.FieldName)
	}
}

// scalarGetStmt renders the decode statement(s) for one scalar member,
// assigning into a freshly declared local variable, plus the error-check
// line. varName is the variable the caller should reference afterwards.
func (b *builder) scalarGetStmt(m plan.MemberSpec, v string) (varName string, lines []string) {
	s := m.Scalar
	key := fmt.Sprintf("%q", m.AttributeKey)
	req := reqExpr(m.Requiredness)

	var expr string

	switch s.Tag {
	case plan.TagString:
		if m.Nullable {
			expr = fmt.Sprintf("ddbitem.GetNullableString(item, %s, %s)", key, req)
		} else {
			expr = fmt.Sprintf("ddbitem.GetString(item, %s, %s)", key, req)
		}

	case plan.TagBool:
		if m.Nullable {
			expr = fmt.Sprintf("ddbitem.GetNullableBool(item, %s, %s)", key, req)
		} else {
			expr = fmt.Sprintf("ddbitem.GetBool(item, %s, %s)", key, req)
		}

	case plan.TagInt, plan.TagLong, plan.TagShort, plan.TagByte:
		tparam := b.typeString(s.GoType)
		if m.Nullable {
			expr = fmt.Sprintf("ddbitem.GetNullableInteger[%s](item, %s, %s)", tparam, key, req)
		} else {
			expr = fmt.Sprintf("ddbitem.GetInteger[%s](item, %s, %s)", tparam, key, req)
		}

	case plan.TagFloat, plan.TagDouble:
		tparam := b.typeString(s.GoType)
		if m.Nullable {
			expr = fmt.Sprintf("ddbitem.GetNullableFloat[%s](item, %s, %s)", tparam, key, req)
		} else {
			expr = fmt.Sprintf("ddbitem.GetFloat[%s](item, %s, %s)", tparam, key, req)
		}

	case plan.TagDecimal:
		if m.Nullable {
			expr = fmt.Sprintf("ddbitem.GetNullableDecimal(item, %s, %s)", key, req)
		} else {
			expr = fmt.Sprintf("ddbitem.GetDecimal(item, %s, %s)", key, req)
		}

	case plan.TagDateTime, plan.TagDateTimeOffset:
		layout := fmt.Sprintf("%q", s.FormatLiteral)
		if m.Nullable {
			expr = fmt.Sprintf("ddbitem.GetNullableTime(item, %s, %s, %s)", key, req, layout)
		} else {
			expr = fmt.Sprintf("ddbitem.GetTime(item, %s, %s, %s)", key, req, layout)
		}

	case plan.TagTimeSpan:
		if m.Nullable {
			expr = fmt.Sprintf("ddbitem.GetNullableDuration(item, %s, %s)", key, req)
		} else {
			expr = fmt.Sprintf("ddbitem.GetDuration(item, %s, %s)", key, req)
		}

	case plan.TagUUID:
		if m.Nullable {
			expr = fmt.Sprintf("ddbitem.GetNullableUUID(item, %s, %s)", key, req)
		} else {
			expr = fmt.Sprintf("ddbitem.GetUUID(item, %s, %s)", key, req)
		}

	case plan.TagEnum:
		parse := b.enumParseFunc(s)
		if m.Nullable {
			expr = fmt.Sprintf("ddbitem.GetNullableEnum(item, %s, %s, %s)", key, req, parse)
		} else {
			def := b.typeString(s.EnumNamed) + "(0)"
			expr = fmt.Sprintf("ddbitem.GetEnum(item, %s, %s, %s, %s)", key, req, parse, def)
		}

	default:
		return v, []string{fmt.Sprintf("// unresolved scalar tag for %s", m.FieldName)}
	}

	return v, []string{fmt.Sprintf("%s, err := %s", v, expr), "if err != nil { return out, err }"}
}
