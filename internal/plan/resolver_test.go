package plan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sr9000dev/ddbmapper/internal/diag"
	"github.com/sr9000dev/ddbmapper/internal/directive"
	"github.com/sr9000dev/ddbmapper/internal/plan"
	"github.com/sr9000dev/ddbmapper/internal/scan"
)

const fixturePkg = "github.com/sr9000dev/ddbmapper/internal/plan/testdata/fixture"

func loadScanner(t *testing.T) *scan.Scanner {
	t.Helper()

	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	return s
}

func TestResolveScalarsAndEnumAndSet(t *testing.T) {
	s := loadScanner(t)

	desc := directive.MapperDescriptor{
		Name:  "OrderMapper",
		Model: fixturePkg + ".Order",
	}

	r := plan.NewResolver(s, []directive.MapperDescriptor{desc})
	p := r.Resolve(desc)

	require.True(t, p.Diagnostics.IsValid(), "%v", p.Diagnostics.Errors)

	byName := make(map[string]plan.MemberSpec, len(p.Members))
	for _, m := range p.Members {
		byName[m.FieldName] = m
	}

	id := byName["ID"]
	require.NotNil(t, id.Scalar)
	require.Equal(t, plan.TagString, id.Scalar.Tag)
	require.Equal(t, "id", id.AttributeKey)

	created := byName["CreatedAt"]
	require.NotNil(t, created.Scalar)
	require.Equal(t, plan.TagDateTime, created.Scalar.Tag)
	require.Equal(t, "O", created.Scalar.FormatLiteral)

	total := byName["Total"]
	require.NotNil(t, total.Scalar)
	require.Equal(t, plan.TagDouble, total.Scalar.Tag)

	priority := byName["Priority"]
	require.NotNil(t, priority.Scalar)
	require.Equal(t, plan.TagEnum, priority.Scalar.Tag)
	require.Equal(t, "G", priority.Scalar.FormatLiteral)

	refID := byName["RefID"]
	require.NotNil(t, refID.Scalar)
	require.Equal(t, plan.TagUUID, refID.Scalar.Tag)

	tags := byName["Tags"]
	require.NotNil(t, tags.Collection)
	require.Equal(t, plan.CollectionSet, tags.Collection.Category)
	require.Equal(t, plan.SetElemString, tags.Collection.SetKind)

	shipping := byName["Shipping"]
	require.NotNil(t, shipping.Nested)
	require.Equal(t, plan.NestedInline, shipping.Nested.Kind)
	require.Len(t, shipping.Nested.Inline.Props, 2)
}

func TestResolveDelegatesWhenMapperExists(t *testing.T) {
	s := loadScanner(t)

	addressDesc := directive.MapperDescriptor{Name: "AddressMapper", Model: fixturePkg + ".Address"}
	orderDesc := directive.MapperDescriptor{Name: "OrderMapper", Model: fixturePkg + ".Order"}

	r := plan.NewResolver(s, []directive.MapperDescriptor{addressDesc, orderDesc})
	p := r.Resolve(orderDesc)

	require.True(t, p.Diagnostics.IsValid(), "%v", p.Diagnostics.Errors)

	for _, m := range p.Members {
		if m.FieldName == "Shipping" {
			require.Equal(t, plan.NestedDelegated, m.Nested.Kind)
			require.NotNil(t, m.Nested.Delegate)
			require.Equal(t, "AddressMapper", m.Nested.Delegate.Name)

			return
		}
	}

	t.Fatal("Shipping member not found")
}

func TestResolveFieldDirectiveForcesInlineEvenWithMapper(t *testing.T) {
	s := loadScanner(t)

	addressDesc := directive.MapperDescriptor{Name: "AddressMapper", Model: fixturePkg + ".Address"}
	orderDesc := directive.MapperDescriptor{
		Name:  "OrderMapper",
		Model: fixturePkg + ".Order",
		Fields: []directive.FieldDirective{
			{Target: "Shipping.Line1", Key: "addr_line1"},
		},
	}

	r := plan.NewResolver(s, []directive.MapperDescriptor{addressDesc, orderDesc})
	p := r.Resolve(orderDesc)

	require.True(t, p.Diagnostics.IsValid(), "%v", p.Diagnostics.Errors)

	for _, m := range p.Members {
		if m.FieldName == "Shipping" {
			require.Equal(t, plan.NestedInline, m.Nested.Kind)

			var line1Key string

			for _, prop := range m.Nested.Inline.Props {
				if prop.FieldName == "Line1" {
					line1Key = prop.AttributeKey
				}
			}

			require.Equal(t, "addr_line1", line1Key)

			return
		}
	}

	t.Fatal("Shipping member not found")
}

func TestResolveCycleDetected(t *testing.T) {
	s := loadScanner(t)

	desc := directive.MapperDescriptor{Name: "AMapper", Model: fixturePkg + ".A"}

	r := plan.NewResolver(s, []directive.MapperDescriptor{desc})
	p := r.Resolve(desc)

	require.False(t, p.Diagnostics.IsValid())
	require.Equal(t, diag.CodeCycleDetected, p.Diagnostics.Errors[0].Code)
}

func TestResolveDetectsLifecycleHooks(t *testing.T) {
	s := loadScanner(t)

	desc := directive.MapperDescriptor{Name: "OrderMapper", Model: fixturePkg + ".Order"}

	r := plan.NewResolver(s, []directive.MapperDescriptor{desc})
	p := r.Resolve(desc)

	require.True(t, p.Diagnostics.IsValid(), "%v", p.Diagnostics.Errors)
	require.True(t, p.Hooks.HasBeforeToItem)
	require.True(t, p.Hooks.HasAfterToItem)
	require.True(t, p.Hooks.HasBeforeFromItem)
	require.True(t, p.Hooks.HasAfterFromItem)
}

func TestResolveKeepsDistinctMappersOverSameModelSeparate(t *testing.T) {
	s := loadScanner(t)

	ordinalDesc := directive.MapperDescriptor{
		Name: "OrdinalMapper", Model: fixturePkg + ".Order",
		Formats: directive.Formats{Enum: "D"},
	}
	nameDesc := directive.MapperDescriptor{
		Name: "NameMapper", Model: fixturePkg + ".Order",
		Formats: directive.Formats{Enum: "G"},
	}

	r := plan.NewResolver(s, []directive.MapperDescriptor{ordinalDesc, nameDesc})

	ordinalPlan := r.Resolve(ordinalDesc)
	namePlan := r.Resolve(nameDesc)

	require.True(t, ordinalPlan.Diagnostics.IsValid(), "%v", ordinalPlan.Diagnostics.Errors)
	require.True(t, namePlan.Diagnostics.IsValid(), "%v", namePlan.Diagnostics.Errors)
	require.Equal(t, "OrdinalMapper", ordinalPlan.Name)
	require.Equal(t, "NameMapper", namePlan.Name)

	var ordinalPriority, namePriority plan.MemberSpec

	for _, m := range ordinalPlan.Members {
		if m.FieldName == "Priority" {
			ordinalPriority = m
		}
	}

	for _, m := range namePlan.Members {
		if m.FieldName == "Priority" {
			namePriority = m
		}
	}

	require.Equal(t, "D", ordinalPriority.Scalar.FormatLiteral)
	require.Equal(t, "G", namePriority.Scalar.FormatLiteral)
}

func TestResolveFatalOnMultiplePreferredConstructors(t *testing.T) {
	s := loadScanner(t)

	desc := directive.MapperDescriptor{
		Name:                 "WidgetMapper",
		Model:                fixturePkg + ".Widget",
		PreferredConstructor: directive.ConstructorMarkers{"NewWidgetFromName", "NewWidgetLegacy"},
	}

	r := plan.NewResolver(s, []directive.MapperDescriptor{desc})
	p := r.Resolve(desc)

	require.False(t, p.Diagnostics.IsValid())
	require.Equal(t, diag.CodeMultiplePreferredCtor, p.Diagnostics.Errors[0].Code)
	require.True(t, p.Constructor.UsesPropertyStyle)
}

func TestResolveSinglePreferredConstructorWins(t *testing.T) {
	s := loadScanner(t)

	desc := directive.MapperDescriptor{
		Name:                 "WidgetMapper",
		Model:                fixturePkg + ".Widget",
		PreferredConstructor: directive.ConstructorMarkers{"NewWidgetLegacy"},
	}

	r := plan.NewResolver(s, []directive.MapperDescriptor{desc})
	p := r.Resolve(desc)

	require.True(t, p.Diagnostics.IsValid(), "%v", p.Diagnostics.Errors)
	require.Equal(t, "NewWidgetLegacy", p.Constructor.FuncName)
	require.False(t, p.Constructor.UsesPropertyStyle)
}

func TestResolveFatalOnDirectiveTargetingUnknownMember(t *testing.T) {
	s := loadScanner(t)

	desc := directive.MapperDescriptor{
		Name:  "OrderMapper",
		Model: fixturePkg + ".Order",
		Fields: []directive.FieldDirective{
			{Target: "ShippingAddress.Line1", Key: "addr_line1"},
		},
	}

	r := plan.NewResolver(s, []directive.MapperDescriptor{desc})
	p := r.Resolve(desc)

	require.False(t, p.Diagnostics.IsValid())
	require.Equal(t, diag.CodeInvalidPath, p.Diagnostics.Errors[0].Code)
	require.Equal(t, "ShippingAddress.Line1", p.Diagnostics.Errors[0].FieldPath)
}

func TestResolveFatalOnIgnoreTargetingUnknownMember(t *testing.T) {
	s := loadScanner(t)

	desc := directive.MapperDescriptor{
		Name:  "OrderMapper",
		Model: fixturePkg + ".Order",
		Ignore: []directive.IgnoreEntry{
			{Target: "Shipping.Zip"},
		},
	}

	r := plan.NewResolver(s, []directive.MapperDescriptor{desc})
	p := r.Resolve(desc)

	require.False(t, p.Diagnostics.IsValid())
	require.Equal(t, diag.CodeInvalidPath, p.Diagnostics.Errors[0].Code)
	require.Equal(t, "Shipping.Zip", p.Diagnostics.Errors[0].FieldPath)
}
