package plan

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/sr9000dev/ddbmapper/internal/diag"
)

// selectConstructor implements §4.6 Constructor Selector's Go-native
// reinterpretation: Go has no constructor overload set, so "the greatest
// parameter count" collapses to "does a New<Model> package function exist".
// preferredFuncs may name more than one candidate, the Go-native stand-in for
// marking more than one constructor preferred in the attribute-based
// original; it is fatal (DM0103) when more than one of those names actually
// resolves to an existing package-level function.
// Priority, first match wins:
//  1. exactly one of preferredFuncs resolves to an existing function → that
//     constructor. Two or more resolving is a fatal diagnostic.
//  2. a package-level function named "New"+modelName.
//  3. otherwise, plain struct-literal construction.
func selectConstructor(pkg *types.Package, modelID, modelName string, preferredFuncs []string, fields []string) (ConstructorPlan, *diag.Diagnostics) {
	diags := &diag.Diagnostics{}

	var marked []string

	for _, name := range preferredFuncs {
		if name == "" {
			continue
		}

		if _, ok := lookupFunc(pkg, name); ok {
			marked = append(marked, name)
		}
	}

	if len(marked) > 1 {
		diags.AddError(diag.Diagnostic{
			TypePair: modelID, Code: diag.CodeMultiplePreferredCtor,
			Message: fmt.Sprintf("more than one constructor-preference marker resolved to a function: %s", strings.Join(marked, ", ")),
		})

		return ConstructorPlan{UsesPropertyStyle: true, ParamOrder: fields}, diags
	}

	candidate := "New" + modelName
	if len(marked) == 1 {
		candidate = marked[0]
	}

	fn, ok := lookupFunc(pkg, candidate)
	if !ok {
		return ConstructorPlan{UsesPropertyStyle: true, ParamOrder: fields}, diags
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return ConstructorPlan{UsesPropertyStyle: true, ParamOrder: fields}, diags
	}

	paramOrder := make([]string, 0, sig.Params().Len())

	for i := 0; i < sig.Params().Len(); i++ {
		paramOrder = append(paramOrder, sig.Params().At(i).Name())
	}

	return ConstructorPlan{FuncName: candidate, ParamOrder: paramOrder}, diags
}

func lookupFunc(pkg *types.Package, name string) (*types.Func, bool) {
	if pkg == nil {
		return nil, false
	}

	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		return nil, false
	}

	fn, ok := obj.(*types.Func)

	return fn, ok
}

// matchParamToField matches a constructor parameter to a field by
// case-insensitive name equality against the field's declared name, not its
// attribute key (§4.6 "Parameter matching").
func matchParamToField(param string, fieldNames []string) (string, bool) {
	for _, f := range fieldNames {
		if strings.EqualFold(param, f) {
			return f, true
		}
	}

	return "", false
}

// classifyConstruction assigns each member's ConstructionMethod once the
// ConstructorPlan is known: members matched to a constructor parameter are
// ConstructorParameter; the rest are InitializerField under property-style
// construction, or PostConstructionAssignment when a matched-constructor
// path leaves some fields unset.
func classifyConstruction(cp *ConstructorPlan, fieldNames []string) map[string]ConstructionMethod {
	out := make(map[string]ConstructionMethod, len(fieldNames))

	matched := make(map[string]bool, len(cp.ParamOrder))

	if !cp.UsesPropertyStyle {
		cp.ParamFields = make([]string, len(cp.ParamOrder))

		for i, p := range cp.ParamOrder {
			if f, ok := matchParamToField(p, fieldNames); ok {
				out[f] = ConstructorParameter
				matched[f] = true
				cp.ParamFields[i] = f
			}
		}
	}

	for _, f := range fieldNames {
		if matched[f] {
			continue
		}

		if cp.UsesPropertyStyle {
			out[f] = InitializerField
		} else {
			out[f] = PostConstructionAssignment
		}
	}

	return out
}
