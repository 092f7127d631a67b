package plan

import (
	"fmt"
	"go/types"

	"github.com/sr9000dev/ddbmapper/internal/diag"
	"github.com/sr9000dev/ddbmapper/internal/scan"
)

// toItemHookResults and fromItemHookResults are the expected result counts
// for the four lifecycle hooks, which take one ddbitem.Item parameter: zero
// results for a
// ToItem-side hook or one error result for a FromItem-side hook, matching
// ToItem/FromItem's own no-error / error-returning shapes.
const (
	toItemHookResults   = 0
	fromItemHookResults = 1
)

// detectHooks resolves spec.md §6's four optional hook methods against
// named's method set, the same scan.HasMethod technique the Type Strategy
// Resolver uses to detect an enum's String() method. A hook with the wrong
// shape is recorded as a warning and left un-invoked rather than failing the
// whole mapper, since every hook is optional.
func detectHooks(scanner *scan.Scanner, named *types.Named, typePair string) (HookPlan, *diag.Diagnostics) {
	diags := &diag.Diagnostics{}

	var plan HookPlan

	plan.HasBeforeToItem = checkHook(scanner, named, typePair, "BeforeToItem", toItemHookResults, diags)
	plan.HasAfterToItem = checkHook(scanner, named, typePair, "AfterToItem", toItemHookResults, diags)
	plan.HasBeforeFromItem = checkHook(scanner, named, typePair, "BeforeFromItem", fromItemHookResults, diags)
	plan.HasAfterFromItem = checkHook(scanner, named, typePair, "AfterFromItem", fromItemHookResults, diags)

	return plan, diags
}

// checkHook reports whether methodName is present on named with an eligible
// hook signature, recording a warning (and treating the hook as absent) for
// each way the signature can be ineligible.
func checkHook(scanner *scan.Scanner, named *types.Named, typePair, methodName string, wantResults int, diags *diag.Diagnostics) bool {
	fn, ok := scanner.HasMethod(named, methodName)
	if !ok {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		diags.AddWarning(diag.Diagnostic{
			TypePair: typePair, Code: diag.CodeHookSignatureInvalid,
			Message: fmt.Sprintf("%s has no usable signature", methodName),
		})

		return false
	}

	if sig.Params().Len() != 1 {
		diags.AddWarning(diag.Diagnostic{
			TypePair: typePair, Code: diag.CodeHookSignatureInvalid,
			Message: fmt.Sprintf("%s must take exactly one ddbitem.Item parameter, found %d", methodName, sig.Params().Len()),
		})

		return false
	}

	if sig.Results().Len() != wantResults {
		diags.AddWarning(diag.Diagnostic{
			TypePair: typePair, Code: diag.CodeHookNotEligible,
			Message: fmt.Sprintf("%s must return %d value(s), found %d", methodName, wantResults, sig.Results().Len()),
		})

		return false
	}

	if !isItemShaped(sig.Params().At(0).Type()) {
		diags.AddWarning(diag.Diagnostic{
			TypePair: typePair, Code: diag.CodeHookParamMismatch,
			Message: fmt.Sprintf("%s's parameter is not ddbitem.Item-shaped", methodName),
		})

		return false
	}

	if wantResults == fromItemHookResults {
		errType := sig.Results().At(0).Type()
		if errType.String() != "error" {
			diags.AddWarning(diag.Diagnostic{
				TypePair: typePair, Code: diag.CodeHookParamMismatch,
				Message: fmt.Sprintf("%s's result is not an error", methodName),
			})

			return false
		}
	}

	return true
}

// isItemShaped reports whether t is structurally ddbitem.Item
// (map[string]types.AttributeValue): since Item is a plain alias, any
// identically-shaped map type satisfies it, no named-type match needed.
func isItemShaped(t types.Type) bool {
	m, ok := t.Underlying().(*types.Map)
	if !ok {
		return false
	}

	basic, ok := m.Key().Underlying().(*types.Basic)
	if !ok || basic.Kind() != types.String {
		return false
	}

	elem, ok := qualifiedName(types.Unalias(m.Elem()))

	return ok && elem == "github.com/aws/aws-sdk-go-v2/service/dynamodb/types.AttributeValue"
}
