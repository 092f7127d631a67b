package plan

import (
	"go/types"

	"github.com/sr9000dev/ddbmapper/internal/directive"
	"github.com/sr9000dev/ddbmapper/internal/scan"
)

const ddbitemSetTypeName = "github.com/sr9000dev/ddbmapper/ddbitem.Set"

// ddbitemSetElement reports whether t is an instantiation of ddbitem.Set[T],
// returning T.
func ddbitemSetElement(t types.Type) (types.Type, bool) {
	named, ok := t.(*types.Named)
	if !ok {
		return nil, false
	}

	origin := named.Origin()
	if origin.Obj().Pkg() == nil {
		return nil, false
	}

	if origin.Obj().Pkg().Path()+"."+origin.Obj().Name() != ddbitemSetTypeName {
		return nil, false
	}

	args := named.TypeArgs()
	if args == nil || args.Len() != 1 {
		return nil, false
	}

	return args.At(0), true
}

// resolveCollection implements §4.4 Collection Analyzer's classification
// order: array -> List; map[string]T -> Map; ddbitem.Set[T] -> Set;
// slice -> List.
func resolveCollection(underlying types.Type) (*CollectionInfo, bool) {
	switch t := underlying.(type) {
	case *types.Array:
		return &CollectionInfo{Category: CollectionList, ElementType: t.Elem(), IsArray: true}, true

	case *types.Map:
		if basic, ok := t.Key().(*types.Basic); !ok || basic.Kind() != types.String {
			return nil, false
		}

		return &CollectionInfo{Category: CollectionMap, ElementType: t.Elem(), KeyType: t.Key()}, true

	case *types.Named:
		if elem, ok := ddbitemSetElement(t); ok {
			kind, ok := setKindFor(elem)
			if !ok {
				return nil, false
			}

			return &CollectionInfo{Category: CollectionSet, ElementType: elem, SetKind: kind}, true
		}

		return nil, false

	case *types.Slice:
		return &CollectionInfo{Category: CollectionList, ElementType: t.Elem()}, true

	default:
		return nil, false
	}
}

// setKindFor derives the AV set variant (SS/NS/BS) from a Set[T] element
// type: string -> SS, numeric -> NS, byte-sequence -> BS.
func setKindFor(elem types.Type) (SetElementKind, bool) {
	if basic, ok := elem.(*types.Basic); ok {
		switch basic.Kind() {
		case types.String:
			return SetElemString, true
		case types.Int, types.Int8, types.Int16, types.Int32, types.Int64,
			types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64,
			types.Float32, types.Float64:
			return SetElemNumber, true
		}
	}

	if slice, ok := elem.(*types.Slice); ok {
		if basic, ok := slice.Elem().(*types.Basic); ok && basic.Kind() == types.Byte {
			return SetElemBinary, true
		}
	}

	return SetElemNone, false
}

// isPrimitiveElement reports whether t is one of §4.4's accepted primitive
// element types for a List/Map (not Set) container, allowing a single-level
// pointer wrapper.
func isPrimitiveElement(s *scan.Scanner, t types.Type, formats directive.Formats) bool {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	if _, ok := t.(*types.Array); ok {
		return false
	}

	if slice, ok := t.(*types.Slice); ok {
		basic, ok2 := slice.Elem().(*types.Basic)

		return ok2 && basic.Kind() == types.Byte
	}

	if _, ok := t.(*types.Map); ok {
		return false
	}

	strat, ok := resolveScalar(s, t, false, directive.FieldDirective{}, formats)

	return ok && strat != nil
}
