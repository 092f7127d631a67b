package plan

import (
	"fmt"
	"go/types"
	"strings"

	"github.com/sr9000dev/ddbmapper/internal/diag"
	"github.com/sr9000dev/ddbmapper/internal/directive"
	"github.com/sr9000dev/ddbmapper/internal/naming"
	"github.com/sr9000dev/ddbmapper/internal/scan"
)

// Resolver drives the resolution pipeline for a batch of mapper
// descriptors, memoizing each resolved MapperPlan by mapper name so that
// MapperDelegated nested mappings (§4.5 rule 3) can reference a sibling
// mapper's plan without re-resolving it. Resolve is not safe to call from
// more than one goroutine at a time: it stores a partially-built *MapperPlan
// in resolved before populating it, which is what lets a delegated cycle
// between two mappers resolve instead of recursing forever, but it means a
// plan can be handed out mid-construction. internal/pipeline is the place
// that enforces the single-caller rule when fanning a batch out.
type Resolver struct {
	scanner  *scan.Scanner
	byModel  map[string]directive.MapperDescriptor
	resolved map[string]*MapperPlan
}

// NewResolver builds a Resolver over every mapper descriptor in the batch,
// the Model Scanner's registry-building step (§4.1).
func NewResolver(scanner *scan.Scanner, descriptors []directive.MapperDescriptor) *Resolver {
	byModel := make(map[string]directive.MapperDescriptor, len(descriptors))
	for _, d := range descriptors {
		byModel[d.Model] = d
	}

	return &Resolver{
		scanner:  scanner,
		byModel:  byModel,
		resolved: make(map[string]*MapperPlan),
	}
}

// ResolveAll resolves every descriptor in the batch. A diagnostic that makes
// one mapper fatal does not abort the others (spec.md §4.8 "Failure
// semantics").
func (r *Resolver) ResolveAll(descriptors []directive.MapperDescriptor) []*MapperPlan {
	plans := make([]*MapperPlan, 0, len(descriptors))

	for _, d := range descriptors {
		p := r.Resolve(d)
		plans = append(plans, p)
	}

	return plans
}

// Resolve resolves one mapper descriptor into a MapperPlan, memoizing the
// result by the descriptor's own name (spec.md §3's "Identity: by
// (namespace, name)"), not by model id: two distinct mapper descriptors are
// free to target the same model type (e.g. one mapper per enum format), and
// each gets its own plan. Delegation lookups use the separate byModel index
// instead, which picks one canonical mapper per model for nested-object
// purposes.
func (r *Resolver) Resolve(desc directive.MapperDescriptor) *MapperPlan {
	if p, ok := r.resolved[desc.Name]; ok {
		return p
	}

	plan := &MapperPlan{
		Name:             desc.Name,
		GenerateToItem:   desc.Generate.ToItemEnabled(),
		GenerateFromItem: desc.Generate.FromItemEnabled(),
	}

	r.resolved[desc.Name] = plan

	if len(desc.ValidationErrors) > 0 {
		for _, msg := range desc.ValidationErrors {
			plan.Diagnostics.AddError(diag.Diagnostic{TypePair: desc.Model, Code: diag.CodeInvalidPath, Message: msg})
		}

		return plan
	}

	pkgPath, modelName, ok := splitModelRef(desc.Model)
	if !ok {
		plan.Diagnostics.AddError(diag.Diagnostic{Code: diag.CodeInvalidPath, Message: fmt.Sprintf("malformed model reference %q", desc.Model)})

		return plan
	}

	plan.ModelPkgPath, plan.ModelName = pkgPath, modelName

	conv, ok := naming.ParseConvention(desc.Naming)
	if !ok {
		plan.Diagnostics.AddWarning(diag.Diagnostic{Code: diag.CodeInvalidPath, Message: fmt.Sprintf("unknown naming convention %q, defaulting to CamelCase", desc.Naming)})
	}

	plan.Naming = conv

	formats := mergeFormats(desc.Formats)
	plan.Formats = formats

	info, err := r.scanner.StructOf(pkgPath, modelName)
	if err != nil {
		plan.Diagnostics.AddError(diag.Diagnostic{TypePair: desc.Model, Code: diag.CodeInvalidPath, Message: err.Error()})

		return plan
	}

	hooks, hookDiags := detectHooks(r.scanner, info.Named, desc.Model)
	plan.Hooks = hooks
	plan.Diagnostics.Merge(hookDiags)

	plan.Diagnostics.Merge(r.validateDirectivePaths(info, desc))

	ancestors := map[string]bool{desc.Model: true}

	members, diags := r.buildMembers(info, desc, formats, conv, "", ancestors)
	plan.Members = members
	plan.Diagnostics.Merge(diags)

	if plan.GenerateFromItem {
		fieldNames := make([]string, len(members))
		for i, m := range members {
			fieldNames[i] = m.FieldName
		}

		cp, ctorDiags := selectConstructor(info.Named.Obj().Pkg(), desc.Model, modelName, desc.PreferredConstructor, fieldNames)
		plan.Diagnostics.Merge(ctorDiags)

		construction := classifyConstruction(&cp, fieldNames)
		plan.Constructor = cp
		for i := range plan.Members {
			plan.Members[i].Construction = construction[plan.Members[i].FieldName]
		}
	}

	return plan
}

func splitModelRef(ref string) (pkgPath, name string, ok bool) {
	i := strings.LastIndex(ref, ".")
	if i < 0 || i == len(ref)-1 {
		return "", "", false
	}

	return ref[:i], ref[i+1:], true
}

func mergeFormats(override directive.Formats) directive.Formats {
	out := directive.DefaultFormats()
	if override.Temporal != "" {
		out.Temporal = override.Temporal
	}

	if override.Duration != "" {
		out.Duration = override.Duration
	}

	if override.Enum != "" {
		out.Enum = override.Enum
	}

	if override.UUID != "" {
		out.UUID = override.UUID
	}

	return out
}

// validateDirectivePaths implements spec.md §4.1's "directives referencing
// unknown members" contract item: every field and ignore directive's target
// path must walk an unbroken chain of exported struct members starting at
// the mapper's root model, independent of whether buildMembers happens to
// expand that deep (a directive under an inline-expanded path is checked the
// same way as one under a delegated path). A path that cannot be walked to
// its end raises DM0008 rather than being silently ignored.
func (r *Resolver) validateDirectivePaths(info *scan.StructInfo, desc directive.MapperDescriptor) *diag.Diagnostics {
	diags := &diag.Diagnostics{}

	check := func(target string) {
		p, ok := directive.ParsePath(target)
		if !ok {
			return // already reported as a ValidationErrors entry
		}

		if ok := r.walkPath(info, p.Segments); !ok {
			diags.AddError(diag.Diagnostic{
				TypePair: desc.Model, FieldPath: target, Code: diag.CodeInvalidPath,
				Message: fmt.Sprintf("directive target path %q references unknown member", target),
			})
		}
	}

	for _, fd := range desc.Fields {
		check(fd.Target)
	}

	for _, ig := range desc.Ignore {
		check(ig.Target)
	}

	return diags
}

// walkPath reports whether each segment in order names an exported field,
// descending into a nested struct type (through at most one pointer
// indirection) for every segment but the last.
func (r *Resolver) walkPath(info *scan.StructInfo, segments []directive.PathSegment) bool {
	for i, seg := range segments {
		f, ok := info.FieldByName(seg.Name)
		if !ok {
			return false
		}

		if i == len(segments)-1 {
			return true
		}

		named, ok := f.Underlying().(*types.Named)
		if !ok {
			return false
		}

		if _, ok := named.Underlying().(*types.Struct); !ok {
			return false
		}

		next, err := r.scanner.StructOf(named.Obj().Pkg().Path(), named.Obj().Name())
		if err != nil {
			return false
		}

		info = next
	}

	return len(segments) == 0
}

// buildMembers walks info's exported fields, producing one MemberSpec per
// mappable field under the given path prefix ("" at the mapper root, a
// dotted path when called recursively for inline expansion).
func (r *Resolver) buildMembers(
	info *scan.StructInfo,
	desc directive.MapperDescriptor,
	formats directive.Formats,
	conv naming.Convention,
	pathPrefix string,
	ancestors map[string]bool,
) ([]MemberSpec, *diag.Diagnostics) {
	diags := &diag.Diagnostics{}

	members := make([]MemberSpec, 0, len(info.Fields))

	for _, f := range info.Fields {
		path := f.Name
		if pathPrefix != "" {
			path = pathPrefix + "." + f.Name
		}

		fd, _ := desc.FieldDirectiveFor(path)

		ignore, hasIgnore := desc.IgnoreDirectiveFor(path)
		if hasIgnore && ignore.EffectiveDirection() == directive.Both {
			continue
		}

		spec := MemberSpec{
			FieldName: f.Name,
			GoType:    f.Type,
			Nullable:  f.Nullable(),
		}

		spec.AttributeKey = fd.Key
		if spec.AttributeKey == "" {
			spec.AttributeKey = naming.Apply(conv, f.Name)
		}

		spec.Requiredness = Resolve(fd.Required, spec.Nullable)
		spec.OmitNull = desc.OmitNullDefault()

		if fd.OmitNull != nil {
			spec.OmitNull = *fd.OmitNull
		}

		spec.OmitEmptyString = desc.OmitEmptyStringDefault()
		if fd.OmitEmptyString != nil {
			spec.OmitEmptyString = *fd.OmitEmptyString
		}

		spec.EmitToItem = !(hasIgnore && ignore.EffectiveDirection() == directive.FromItemOnly)
		spec.EmitFromItem = !(hasIgnore && ignore.EffectiveDirection() == directive.ToItemOnly)

		if fd.HasCustomSerialize() {
			spec.CustomSerializeMethod = fd.Serialize
		}

		if fd.HasCustomDeserialize() {
			spec.CustomDeserializeMethod = fd.Deserialize
		}

		// §4.3: both custom methods present means no standard strategy at all.
		if fd.HasCustomSerialize() && fd.HasCustomDeserialize() {
			members = append(members, spec)

			continue
		}

		underlying := f.Underlying()

		if IsContainerKind(fd.Kind) {
			if _, isScalar := resolveScalar(r.scanner, underlying, spec.Nullable, directive.FieldDirective{}, formats); isScalar {
				diags.AddError(diag.Diagnostic{
					TypePair: desc.Model, FieldPath: path, Code: diag.CodeCannotConvert,
					Message: fmt.Sprintf("kind override %s is a container kind but %s is scalar", fd.Kind, f.Name),
				})

				continue
			}
		}

		if strat, ok := resolveScalar(r.scanner, underlying, spec.Nullable, fd, formats); ok {
			spec.Scalar = strat
			members = append(members, spec)

			continue
		}

		if coll, ok := resolveCollection(underlying); ok {
			r.resolveCollectionElement(coll, desc, formats, conv, path, ancestors, diags)
			spec.Collection = coll
			members = append(members, spec)

			continue
		}

		if nested, resolvedOK := r.resolveNestedAt(underlying, path, desc, formats, conv, ancestors, diags); resolvedOK {
			spec.Nested = nested
			members = append(members, spec)

			continue
		}

		diags.AddError(diag.Diagnostic{
			TypePair: desc.Model, FieldPath: path, Code: diag.CodeUnsupportedNested,
			Message: fmt.Sprintf("unsupported nested member type at path %s", path),
		})
	}

	return members, diags
}

// resolveCollectionElement fills in coll.ElementStrat or coll.ElementNested
// for a List/Map-category collection whose element is not one of §4.4's
// accepted primitives.
func (r *Resolver) resolveCollectionElement(
	coll *CollectionInfo,
	desc directive.MapperDescriptor,
	formats directive.Formats,
	conv naming.Convention,
	path string,
	ancestors map[string]bool,
	diags *diag.Diagnostics,
) {
	if coll.Category == CollectionSet {
		return
	}

	elemType := coll.ElementType
	nullableElem := false

	if p, ok := elemType.(*types.Pointer); ok {
		elemType = p.Elem()
		nullableElem = true
	}

	if strat, ok := resolveScalar(r.scanner, elemType, nullableElem, directive.FieldDirective{}, formats); ok {
		coll.ElementStrat = strat

		return
	}

	if nested, ok := r.resolveNestedAt(elemType, path, desc, formats, conv, ancestors, diags); ok {
		coll.ElementNested = nested

		return
	}

	diags.AddError(diag.Diagnostic{
		TypePair: desc.Model, FieldPath: path, Code: diag.CodeUnsupportedNested,
		Message: fmt.Sprintf("unsupported nested member type at path %s", path),
	})
}

// resolveNestedAt implements §4.5 Nested Object Analyzer for the type at
// path (already pointer-stripped by the caller).
func (r *Resolver) resolveNestedAt(
	t types.Type,
	path string,
	desc directive.MapperDescriptor,
	formats directive.Formats,
	conv naming.Convention,
	ancestors map[string]bool,
	diags *diag.Diagnostics,
) (*NestedMapping, bool) {
	named, ok := t.(*types.Named)
	if !ok {
		return nil, false
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, false
	}

	if st.NumFields() == 0 {
		return nil, false
	}

	modelID := named.Obj().Pkg().Path() + "." + named.Obj().Name()

	if ancestors[modelID] {
		diags.AddError(diag.Diagnostic{
			TypePair: desc.Model, FieldPath: path, Code: diag.CodeCycleDetected,
			Message: fmt.Sprintf("cycle detected at path %s", path),
		})

		return nil, false
	}

	forceInline := len(desc.DirectivesUnder(path)) > 0

	if !forceInline {
		if otherDesc, exists := r.byModel[modelID]; exists {
			delegatePlan := r.Resolve(otherDesc)

			return &NestedMapping{Kind: NestedDelegated, ModelID: modelID, Delegate: delegatePlan}, true
		}
	}

	info, err := r.scanner.StructOf(named.Obj().Pkg().Path(), named.Obj().Name())
	if err != nil {
		diags.AddError(diag.Diagnostic{
			TypePair: desc.Model, FieldPath: path, Code: diag.CodeUnsupportedNested,
			Message: err.Error(),
		})

		return nil, false
	}

	childAncestors := make(map[string]bool, len(ancestors)+1)
	for k := range ancestors {
		childAncestors[k] = true
	}

	childAncestors[modelID] = true

	props, childDiags := r.buildMembers(info, desc, formats, conv, path, childAncestors)
	diags.Merge(childDiags)

	return &NestedMapping{
		Kind:    NestedInline,
		ModelID: modelID,
		Inline:  &InlineInfo{ModelID: modelID, Props: props},
	}, true
}
