// Package scan implements the Model Scanner and Member Analyzer: it loads
// type-checked Go packages with golang.org/x/tools/go/packages, resolves a
// directive's "model" reference to a *types.Named struct type, and
// normalizes each exported field into a scan.FieldInfo the plan stage
// consumes. It is grounded on the teacher's internal/analyze package, which
// performs the same go/packages + go/types walk for its own (fuzzy-match
// oriented) purposes.
package scan

import (
	"fmt"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode is the minimal packages.Load mode that yields full type
// information and method sets without pulling in dependency syntax we never
// inspect.
const LoadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo | packages.NeedImports

// Scanner holds the type-checked packages for one generator invocation and
// caches struct lookups across the mappers that share them.
type Scanner struct {
	pkgs  []*packages.Package
	byID  map[TypeID]*StructInfo
	named map[TypeID]*types.Named
}

// Load type-checks every package matching the given patterns (Go package
// patterns, e.g. "./..." or "example.com/m/...").
func Load(patterns ...string) (*Scanner, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("scan: load packages: %w", err)
	}

	var errs []string

	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, e.Error())
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("scan: %s", strings.Join(errs, "; "))
	}

	return &Scanner{
		pkgs:  pkgs,
		byID:  make(map[TypeID]*StructInfo),
		named: make(map[TypeID]*types.Named),
	}, nil
}

// pkgByPath returns the loaded *packages.Package with the given import path.
func (s *Scanner) pkgByPath(path string) (*packages.Package, bool) {
	for _, p := range s.pkgs {
		if p.PkgPath == path {
			return p, true
		}
	}

	return nil, false
}

// PackageDir returns the filesystem directory holding the loaded package at
// pkgPath, the same directory a generated file for one of its models should
// land in.
func (s *Scanner) PackageDir(pkgPath string) (string, error) {
	pkg, ok := s.pkgByPath(pkgPath)
	if !ok {
		return "", fmt.Errorf("scan: package %q not loaded", pkgPath)
	}

	if len(pkg.GoFiles) == 0 {
		return "", fmt.Errorf("scan: package %q has no Go files", pkgPath)
	}

	return filepath.Dir(pkg.GoFiles[0]), nil
}

// FindNamed resolves a package-path-qualified type name to its *types.Named.
func (s *Scanner) FindNamed(pkgPath, name string) (*types.Named, error) {
	id := TypeID{PkgPath: pkgPath, Name: name}
	if n, ok := s.named[id]; ok {
		return n, nil
	}

	pkg, ok := s.pkgByPath(pkgPath)
	if !ok {
		return nil, fmt.Errorf("scan: package %q not loaded", pkgPath)
	}

	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("scan: type %q not found in package %q", name, pkgPath)
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("scan: %q in package %q is not a type", name, pkgPath)
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("scan: %q in package %q is not a named type", name, pkgPath)
	}

	s.named[id] = named

	return named, nil
}

// StructOf resolves a model reference to a fully analyzed StructInfo. Only
// exported fields are considered; unexported fields are skipped and never
// participate in mapping.
func (s *Scanner) StructOf(pkgPath, name string) (*StructInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: name}
	if info, ok := s.byID[id]; ok {
		return info, nil
	}

	named, err := s.FindNamed(pkgPath, name)
	if err != nil {
		return nil, err
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("scan: %s is not a struct type", id)
	}

	fields := make([]FieldInfo, 0, st.NumFields())

	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		if !v.Exported() {
			continue
		}

		fields = append(fields, FieldInfo{
			Name:     v.Name(),
			Type:     v.Type(),
			Tag:      st.Tag(i),
			Index:    i,
			Embedded: v.Embedded(),
		})
	}

	info := &StructInfo{ID: id, Named: named, Struct: st, Fields: fields}
	s.byID[id] = info

	return info, nil
}

// HasMethod reports whether named (or its pointer type) declares a method
// with the given name, and returns its *types.Func for signature
// inspection. Hook detection (before_to_item, after_from_item, ...) and
// enum-ness detection (a String() string method) both go through this path.
func (s *Scanner) HasMethod(named *types.Named, methodName string) (*types.Func, bool) {
	ptr := types.NewPointer(named)

	mset := types.NewMethodSet(ptr)
	for i := 0; i < mset.Len(); i++ {
		sel := mset.At(i)
		if sel.Obj().Name() == methodName {
			if fn, ok := sel.Obj().(*types.Func); ok {
				return fn, true
			}
		}
	}

	return nil, false
}

// IsEnumLike reports whether named is a defined type over a basic integer or
// string kind that also declares a String() string method — the Go
// equivalent of an "Enum E" scalar in spec.md's mapping table, detected
// structurally since Go has no first-class enum type.
func (s *Scanner) IsEnumLike(named *types.Named) bool {
	basic, ok := named.Underlying().(*types.Basic)
	if !ok {
		return false
	}

	switch basic.Kind() {
	case types.String, types.Int, types.Int8, types.Int16, types.Int32, types.Int64,
		types.Uint, types.Uint8, types.Uint16, types.Uint32, types.Uint64:
	default:
		return false
	}

	fn, ok := s.HasMethod(named, "String")
	if !ok {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)

	return ok && sig.Params().Len() == 0 && sig.Results().Len() == 1
}
