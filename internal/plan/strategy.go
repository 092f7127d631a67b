package plan

import (
	"go/types"

	"github.com/sr9000dev/ddbmapper/internal/directive"
	"github.com/sr9000dev/ddbmapper/internal/scan"
)

// wellKnown identifies the handful of external scalar types the resolver
// recognizes by fully-qualified name, since go/types has no notion of
// "temporal" or "uuid" beyond the concrete standard-library/ecosystem type.
const (
	timeTimeID     = "time.Time"
	timeDurationID = "time.Duration"
	uuidUUIDID     = "github.com/google/uuid.UUID"
	decimalID      = "github.com/shopspring/decimal.Decimal"
)

func qualifiedName(t types.Type) (string, bool) {
	named, ok := t.(*types.Named)
	if !ok {
		return "", false
	}

	obj := named.Obj()
	if obj.Pkg() == nil {
		return obj.Name(), true
	}

	return obj.Pkg().Path() + "." + obj.Name(), true
}

// resolveScalar implements §4.3 Type Strategy Resolver for one member's
// underlying (pointer-stripped) type. It returns (nil, false) when the type
// is not scalar, deferring classification to the Collection Analyzer or the
// Nested Object Analyzer.
func resolveScalar(s *scan.Scanner, underlying types.Type, nullable bool, fd directive.FieldDirective, formats directive.Formats) (*Strategy, bool) {
	if basic, ok := underlying.(*types.Basic); ok {
		if tag, ok := basicTag(basic); ok {
			return &Strategy{Tag: tag, Nullable: nullable, KindOverride: fd.Kind, GoType: underlying}, true
		}
	}

	qname, isNamed := qualifiedName(underlying)
	if isNamed {
		switch qname {
		case timeTimeID:
			return &Strategy{
				Tag: TagDateTime, Nullable: nullable, GoType: underlying,
				FormatLiteral: resolveFormat(fd.Format, formats.Temporal, "O"),
				KindOverride:  fd.Kind,
			}, true
		case timeDurationID:
			return &Strategy{
				Tag: TagTimeSpan, Nullable: nullable, GoType: underlying,
				FormatLiteral: resolveFormat(fd.Format, formats.Duration, "c"),
				KindOverride:  fd.Kind,
			}, true
		case uuidUUIDID:
			return &Strategy{
				Tag: TagUUID, Nullable: nullable, GoType: underlying,
				FormatLiteral: resolveFormat(fd.Format, formats.UUID, "D"),
				KindOverride:  fd.Kind,
			}, true
		case decimalID:
			return &Strategy{Tag: TagDecimal, Nullable: nullable, GoType: underlying, KindOverride: fd.Kind}, true
		}
	}

	if named, ok := underlying.(*types.Named); ok && s != nil && s.IsEnumLike(named) {
		format := resolveFormat(fd.Format, formats.Enum, "G")
		strat := &Strategy{
			Tag: TagEnum, Nullable: nullable, GoType: underlying,
			FormatLiteral: format, KindOverride: fd.Kind, EnumNamed: named,
			EnumVariants: enumVariants(named),
		}

		if !nullable {
			strat.DefaultLiteral = zeroEnumLiteral(named)
		}

		return strat, true
	}

	return nil, false
}

// enumVariants lists the package-level constant names declared with
// exactly named's type, in the scope's (alphabetical) iteration order. The
// renderer uses this to build a reverse String()->value lookup, since Go
// has no built-in enum-parsing counterpart to String().
func enumVariants(named *types.Named) []string {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return nil
	}

	scope := obj.Pkg().Scope()

	var variants []string

	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}

		if namedT, ok := c.Type().(*types.Named); ok && namedT == named {
			variants = append(variants, name)
		}
	}

	return variants
}

func resolveFormat(directiveFormat, mapperDefault, hardDefault string) string {
	if directiveFormat != "" {
		return directiveFormat
	}

	if mapperDefault != "" {
		return mapperDefault
	}

	return hardDefault
}

func zeroEnumLiteral(named *types.Named) string {
	return named.Obj().Name() + "(0)"
}

func basicTag(b *types.Basic) (TypeTag, bool) {
	switch b.Kind() {
	case types.String:
		return TagString, true
	case types.Bool:
		return TagBool, true
	case types.Int8:
		return TagByte, true
	case types.Int16, types.Uint16:
		return TagShort, true
	case types.Int, types.Int32, types.Uint, types.Uint32:
		return TagInt, true
	case types.Int64, types.Uint64:
		return TagLong, true
	case types.Float32:
		return TagFloat, true
	case types.Float64:
		return TagDouble, true
	default:
		return TagUnknown, false
	}
}

// IsContainerKind reports whether a directive kind override names one of
// the container AV variants (L, M, SS, NS, BS).
func IsContainerKind(k directive.Kind) bool {
	switch k {
	case directive.KindL, directive.KindM, directive.KindSS, directive.KindNS, directive.KindBS:
		return true
	default:
		return false
	}
}
