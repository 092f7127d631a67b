package render_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sr9000dev/ddbmapper/internal/directive"
	"github.com/sr9000dev/ddbmapper/internal/plan"
	"github.com/sr9000dev/ddbmapper/internal/render"
	"github.com/sr9000dev/ddbmapper/internal/scan"
)

const fixturePkg = "github.com/sr9000dev/ddbmapper/internal/plan/testdata/fixture"

func resolveOrder(t *testing.T) *plan.MapperPlan {
	t.Helper()

	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	addressDesc := directive.MapperDescriptor{Name: "AddressMapper", Model: fixturePkg + ".Address"}
	orderDesc := directive.MapperDescriptor{Name: "OrderMapper", Model: fixturePkg + ".Order"}

	r := plan.NewResolver(s, []directive.MapperDescriptor{addressDesc, orderDesc})
	p := r.Resolve(orderDesc)
	require.True(t, p.Diagnostics.IsValid(), "%v", p.Diagnostics.Errors)

	return p
}

func TestRenderEmitsToItemAndFromItem(t *testing.T) {
	p := resolveOrder(t)

	files, errs := render.Render([]*plan.MapperPlan{p})
	require.Empty(t, errs)
	require.Len(t, files, 1)

	src := string(files[0].Source)

	require.Contains(t, src, "Code generated by ddbmapper-gen. DO NOT EDIT.")
	require.Contains(t, src, "type OrderMapper struct{}")
	require.Contains(t, src, "func (OrderMapper) ToItem(src Order) ddbitem.Item {")
	require.Contains(t, src, "func (OrderMapper) FromItem(item ddbitem.Item) (Order, error) {")
	require.Contains(t, src, `ddbitem.SetString(item, "id", src.ID`)
	require.Contains(t, src, `ddbitem.SetTime(item, "createdAt", src.CreatedAt, "O")`)
	require.Contains(t, src, "ddbitem.SetStringSet(item, \"tags\", src.Tags)")
	require.Contains(t, src, "ddbitem.SetEnum(item, \"priority\", src.Priority")
	require.Contains(t, src, "ddbitem.SetUUID(item, \"refId\", src.RefID)")
}

func TestRenderSkipsFatalPlans(t *testing.T) {
	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	desc := directive.MapperDescriptor{Name: "AMapper", Model: fixturePkg + ".A"}
	r := plan.NewResolver(s, []directive.MapperDescriptor{desc})
	p := r.Resolve(desc)
	require.False(t, p.Diagnostics.IsValid())

	files, errs := render.Render([]*plan.MapperPlan{p})
	require.Empty(t, files)
	require.Len(t, errs, 1)
}

func TestRenderInlineExpandsNestedObjectWhenNoMapperRegistered(t *testing.T) {
	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	orderDesc := directive.MapperDescriptor{Name: "OrderMapper", Model: fixturePkg + ".Order"}
	r := plan.NewResolver(s, []directive.MapperDescriptor{orderDesc})
	p := r.Resolve(orderDesc)
	require.True(t, p.Diagnostics.IsValid(), "%v", p.Diagnostics.Errors)

	files, errs := render.Render([]*plan.MapperPlan{p})
	require.Empty(t, errs)
	require.Len(t, files, 1)

	src := string(files[0].Source)
	require.Contains(t, src, `ddbitem.SetString(item, "line1", src.Shipping.Line1`)
	require.Contains(t, src, `ddbitem.SetString(item, "city", src.Shipping.City`)
}

func TestRenderGuardsNullableCollection(t *testing.T) {
	p := resolveOrder(t)

	files, errs := render.Render([]*plan.MapperPlan{p})
	require.Empty(t, errs)
	require.Len(t, files, 1)

	src := string(files[0].Source)
	require.Contains(t, src, "if src.Labels != nil {")
	require.Contains(t, src, "ddbitem.SetList(item, \"labels\", (*src.Labels)")
	require.Contains(t, src, "vLabelsPresent, err := ddbitem.Present(item, \"labels\"")
	require.Contains(t, src, "var vLabels *[]string")
	require.Contains(t, src, "vLabels = &vLabelsRaw")
}

func TestRenderInvokesLifecycleHooks(t *testing.T) {
	p := resolveOrder(t)

	files, errs := render.Render([]*plan.MapperPlan{p})
	require.Empty(t, errs)
	require.Len(t, files, 1)

	src := string(files[0].Source)
	require.Contains(t, src, "src.BeforeToItem(item)")
	require.Contains(t, src, "src.AfterToItem(item)")
	require.Contains(t, src, "if err := out.BeforeFromItem(item); err != nil {\n\t\treturn out, err\n\t}")
	require.Contains(t, src, "if err := out.AfterFromItem(item); err != nil {\n\t\treturn out, err\n\t}")
}

func TestRenderDelegatesToSiblingMapper(t *testing.T) {
	p := resolveOrder(t)

	files, errs := render.Render([]*plan.MapperPlan{p})
	require.Empty(t, errs)
	require.Len(t, files, 1)

	src := string(files[0].Source)
	require.Contains(t, src, `ddbitem.SetNestedItem(item, "shipping", AddressMapper{}.ToItem(src.Shipping))`)
}
