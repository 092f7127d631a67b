package render

import (
	"fmt"
	"strings"

	"github.com/sr9000dev/ddbmapper/internal/plan"
)

// enumFormatFunc builds the format closure generated code passes to
// ddbitem.SetEnum/SetNullableEnum. "G" formats by name (the enum's own
// String() method); "D" formats the ordinal numeric value. Any other
// configured format falls back to "G", the same default used when no
// format directive or mapper default is present.
func (b *builder) enumFormatFunc(s *plan.Strategy) string {
	enumType := b.typeString(s.EnumNamed)

	if s.FormatLiteral == "D" {
		b.addImport("strconv")

		return fmt.Sprintf("func(v %s) string { return strconv.FormatInt(int64(v), 10) }", enumType)
	}

	return fmt.Sprintf("func(v %s) string { return v.String() }", enumType)
}

// enumParseFunc builds the parse closure generated code passes to
// ddbitem.GetEnum/GetNullableEnum. "G" reverse-matches against each
// declared constant's own String() output; "D" parses the ordinal value.
func (b *builder) enumParseFunc(s *plan.Strategy) string {
	enumType := b.typeString(s.EnumNamed)
	pkg := s.EnumNamed.Obj().Pkg()

	if s.FormatLiteral == "D" {
		b.addImport("strconv")

		return fmt.Sprintf(
			"func(v string) (%s, error) { n, parseErr := strconv.ParseInt(v, 10, 64); if parseErr != nil { return %s(0), parseErr }; return %s(n), nil }",
			enumType, enumType, enumType,
		)
	}

	b.addImport("fmt")

	var cases strings.Builder

	for _, variant := range s.EnumVariants {
		ident := b.qualifiedIdent(pkg, variant)
		fmt.Fprintf(&cases, "case %s.String(): return %s, nil; ", ident, ident)
	}

	return fmt.Sprintf(
		"func(v string) (%s, error) { switch v { %s}; return %s(0), fmt.Errorf(\"unknown enum value %%q\", v) }",
		enumType, cases.String(), enumType,
	)
}
