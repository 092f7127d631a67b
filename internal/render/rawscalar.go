package render

import (
	"fmt"

	"github.com/sr9000dev/ddbmapper/internal/plan"
)

// rawElementEncodeExpr builds a single expression producing a
// types.AttributeValue from varExpr (one collection element), used inside
// the encode closures SetList/SetMap take. It is the element-scoped
// counterpart of scalarSetStmt, which instead writes a whole item key.
func (b *builder) rawElementEncodeExpr(s *plan.Strategy, varExpr string) string {
	switch s.Tag {
	case plan.TagString:
		return fmt.Sprintf("&types.AttributeValueMemberS{Value: %s}", varExpr)

	case plan.TagBool:
		return fmt.Sprintf("&types.AttributeValueMemberBOOL{Value: %s}", varExpr)

	case plan.TagInt, plan.TagLong, plan.TagShort, plan.TagByte:
		b.addImport("strconv")

		return fmt.Sprintf("&types.AttributeValueMemberN{Value: strconv.FormatInt(int64(%s), 10)}", varExpr)

	case plan.TagFloat, plan.TagDouble:
		b.addImport("strconv")

		return fmt.Sprintf("&types.AttributeValueMemberN{Value: strconv.FormatFloat(float64(%s), 'g', -1, 64)}", varExpr)

	case plan.TagDecimal:
		return fmt.Sprintf("&types.AttributeValueMemberN{Value: %s.String()}", varExpr)

	case plan.TagDateTime, plan.TagDateTimeOffset:
		return fmt.Sprintf("&types.AttributeValueMemberS{Value: %s.Format(%q)}", varExpr, s.FormatLiteral)

	case plan.TagTimeSpan:
		return fmt.Sprintf("&types.AttributeValueMemberS{Value: ddbitem.FormatDuration(%s)}", varExpr)

	case plan.TagUUID:
		return fmt.Sprintf("&types.AttributeValueMemberS{Value: %s.String()}", varExpr)

	case plan.TagEnum:
		if s.FormatLiteral == "D" {
			b.addImport("strconv")

			return fmt.Sprintf("&types.AttributeValueMemberS{Value: strconv.FormatInt(int64(%s), 10)}", varExpr)
		}

		return fmt.Sprintf("&types.AttributeValueMemberS{Value: %s.String()}", varExpr)

	default:
		return "nil /* unresolved element tag */"
	}
}

// zeroLiteral renders elemType's zero value, for use in a decode closure's
// error-path return.
func (b *builder) zeroLiteral(s *plan.Strategy, elemType string) string {
	switch s.Tag {
	case plan.TagString:
		return `""`
	case plan.TagBool:
		return "false"
	case plan.TagDecimal:
		b.addImport("github.com/shopspring/decimal")

		return "decimal.Zero"
	case plan.TagDateTime, plan.TagDateTimeOffset:
		b.addImport("time")

		return "time.Time{}"
	case plan.TagUUID:
		b.addImport("github.com/google/uuid")

		return "uuid.UUID{}"
	case plan.TagEnum:
		return elemType + "(0)"
	default:
		return "0"
	}
}

// rawElementDecodeBody builds the statement sequence inside a List/Map
// decode closure for a single scalar/enum element.
func (b *builder) rawElementDecodeBody(s *plan.Strategy, elemType string) string {
	b.addImport("fmt")

	zero := b.zeroLiteral(s, elemType)

	switch s.Tag {
	case plan.TagString:
		return fmt.Sprintf(`s, ok := av.(*types.AttributeValueMemberS); if !ok { return %s, fmt.Errorf("want S") }; return s.Value, nil`, zero)

	case plan.TagBool:
		return fmt.Sprintf(`bv, ok := av.(*types.AttributeValueMemberBOOL); if !ok { return %s, fmt.Errorf("want BOOL") }; return bv.Value, nil`, zero)

	case plan.TagInt, plan.TagLong, plan.TagShort, plan.TagByte:
		b.addImport("strconv")

		return fmt.Sprintf(
			`nv, ok := av.(*types.AttributeValueMemberN); if !ok { return %s, fmt.Errorf("want N") }; n, err := strconv.ParseInt(nv.Value, 10, 64); if err != nil { return %s, err }; return %s(n), nil`,
			zero, zero, elemType,
		)

	case plan.TagFloat, plan.TagDouble:
		b.addImport("strconv")

		return fmt.Sprintf(
			`nv, ok := av.(*types.AttributeValueMemberN); if !ok { return %s, fmt.Errorf("want N") }; f, err := strconv.ParseFloat(nv.Value, 64); if err != nil { return %s, err }; return %s(f), nil`,
			zero, zero, elemType,
		)

	case plan.TagDecimal:
		b.addImport("github.com/shopspring/decimal")

		return fmt.Sprintf(
			`nv, ok := av.(*types.AttributeValueMemberN); if !ok { return %s, fmt.Errorf("want N") }; d, err := decimal.NewFromString(nv.Value); if err != nil { return %s, err }; return d, nil`,
			zero, zero,
		)

	case plan.TagDateTime, plan.TagDateTimeOffset:
		b.addImport("time")

		return fmt.Sprintf(
			`sv, ok := av.(*types.AttributeValueMemberS); if !ok { return %s, fmt.Errorf("want S") }; t, err := time.Parse(%q, sv.Value); if err != nil { return %s, err }; return t, nil`,
			zero, s.FormatLiteral, zero,
		)

	case plan.TagTimeSpan:
		return fmt.Sprintf(
			`sv, ok := av.(*types.AttributeValueMemberS); if !ok { return %s, fmt.Errorf("want S") }; d, err := ddbitem.ParseDuration(sv.Value); if err != nil { return %s, err }; return d, nil`,
			zero, zero,
		)

	case plan.TagUUID:
		b.addImport("github.com/google/uuid")

		return fmt.Sprintf(
			`sv, ok := av.(*types.AttributeValueMemberS); if !ok { return %s, fmt.Errorf("want S") }; id, err := uuid.Parse(sv.Value); if err != nil { return %s, err }; return id, nil`,
			zero, zero,
		)

	case plan.TagEnum:
		parse := b.enumParseFunc(s)

		return fmt.Sprintf(
			`sv, ok := av.(*types.AttributeValueMemberS); if !ok { return %s, fmt.Errorf("want S") }; parse := %s; return parse(sv.Value)`,
			zero, parse,
		)

	default:
		return fmt.Sprintf(`return %s, fmt.Errorf("unresolved element tag")`, zero)
	}
}
