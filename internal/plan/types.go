// Package plan implements the Type Strategy Resolver, Collection Analyzer,
// Nested Object Analyzer, Constructor Selector, and Spec Builder: together
// they turn a scanned model struct plus its directives into an ordered
// MapperPlan the render stage can emit directly. It is grounded on the
// teacher's internal/plan package (resolver.go, strategy_selector.go,
// virtual_types.go), generalized from the teacher's "rename a field between
// two Go structs" domain to this generator's "map a Go struct to a
// DynamoDB-style item" domain.
package plan

import (
	"go/types"

	"github.com/sr9000dev/ddbmapper/internal/diag"
	"github.com/sr9000dev/ddbmapper/internal/directive"
	"github.com/sr9000dev/ddbmapper/internal/naming"
)

// TypeTag names a scalar family a member's underlying type resolves to.
type TypeTag int

const (
	TagUnknown TypeTag = iota
	TagString
	TagBool
	TagInt
	TagLong
	TagShort
	TagByte
	TagFloat
	TagDouble
	TagDecimal
	TagDateTime
	TagDateTimeOffset
	TagTimeSpan
	TagUUID
	TagEnum
)

// Requiredness is the resolved (never InferFromNullability) requiredness a
// member's emitted calls use.
type Requiredness int

const (
	ReqRequired Requiredness = iota
	ReqOptional
)

// Resolve turns a directive.Requiredness (possibly InferFromNullability)
// plus the member's nullability into a concrete Requiredness, spec.md §3.
func Resolve(r directive.Requiredness, nullable bool) Requiredness {
	switch r {
	case directive.Required:
		return ReqRequired
	case directive.Optional:
		return ReqOptional
	default: // "" or InferFromNullability
		if nullable {
			return ReqOptional
		}

		return ReqRequired
	}
}

// Strategy is a resolved Type Strategy for a scalar (or enum) member.
type Strategy struct {
	Tag            TypeTag
	Nullable       bool
	FormatLiteral  string // temporal / duration / enum / uuid format, "" if N/A
	DefaultLiteral string // non-nullable enum default (zero value literal)
	KindOverride   directive.Kind
	GoType         types.Type
	EnumNamed      *types.Named // non-nil when Tag == TagEnum
	EnumVariants   []string     // declared package-level constant names sharing EnumNamed's type
}

// CollectionCategory classifies a container-typed member.
type CollectionCategory int

const (
	CollectionNone CollectionCategory = iota
	CollectionList
	CollectionMap
	CollectionSet
)

// SetElementKind names which AV set variant a Set-typed member resolves to.
type SetElementKind int

const (
	SetElemNone SetElementKind = iota
	SetElemString
	SetElemNumber
	SetElemBinary
)

// CollectionInfo is a resolved Collection Analyzer verdict.
type CollectionInfo struct {
	Category      CollectionCategory
	ElementType   types.Type
	ElementStrat  *Strategy      // set when the element is itself scalar/enum
	ElementNested *NestedMapping // set when the element is a nested object
	KeyType       types.Type     // Map only
	IsArray       bool
	SetKind       SetElementKind
}

// NestedMappingKind distinguishes the two Nested Mapping sum-type variants.
type NestedMappingKind int

const (
	NestedDelegated NestedMappingKind = iota
	NestedInline
)

// NestedMapping is the sum type {MapperDelegated | InlineExpanded}.
type NestedMapping struct {
	Kind     NestedMappingKind
	ModelID  string // fully-qualified model type, "pkgPath.Name"
	Delegate *MapperPlan
	Inline   *InlineInfo
}

// InlineInfo holds an ordered sequence of nested property specs for an
// inline-expanded nested object.
type InlineInfo struct {
	ModelID string
	Props   []MemberSpec
}

// ConstructionMethod classifies how a member is populated during from_item.
type ConstructionMethod int

const (
	ConstructorParameter ConstructionMethod = iota
	InitializerField
	PostConstructionAssignment
)

// ConstructorPlan is the resolved Constructor Selector verdict.
type ConstructorPlan struct {
	FuncName          string // "" means struct-literal construction (no New* func)
	ParamOrder        []string
	ParamFields       []string // same length as ParamOrder; "" where a parameter matched no field
	UsesPropertyStyle bool
}

// MemberSpec is a Property Mapping Spec: one member's resolved strategy plus
// the method-call argument vectors for both directions.
type MemberSpec struct {
	FieldName       string
	AttributeKey    string
	GoType          types.Type
	Nullable        bool
	Requiredness    Requiredness
	OmitNull        bool
	OmitEmptyString bool

	Scalar     *Strategy
	Collection *CollectionInfo
	Nested     *NestedMapping

	CustomSerializeMethod   string
	CustomDeserializeMethod string

	EmitToItem   bool
	EmitFromItem bool

	Construction ConstructionMethod
}

// MapperPlan is the Spec Builder's final output for one mapper: everything
// the Code Renderer needs, in member-declaration order.
type MapperPlan struct {
	Name             string
	ModelPkgPath     string
	ModelName        string
	Naming           naming.Convention
	Formats          directive.Formats
	GenerateToItem   bool
	GenerateFromItem bool
	Members          []MemberSpec
	Constructor      ConstructorPlan
	Hooks            HookPlan
	Diagnostics      diag.Diagnostics
}

// HookPlan records which of the model type's optional lifecycle hooks
// (spec.md §6) were found with an eligible signature. A hook that is absent,
// or present with the wrong shape, is simply not invoked by the renderer —
// the Go equivalent of "compiles to a no-op".
type HookPlan struct {
	HasBeforeToItem   bool
	HasAfterToItem    bool
	HasBeforeFromItem bool
	HasAfterFromItem  bool
}

// TypePair renders "pkgPath.Name" for diagnostic TypePair fields.
func (p *MapperPlan) TypePair() string {
	return p.ModelPkgPath + "." + p.ModelName
}
