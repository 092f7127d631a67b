package directive

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses one directive YAML file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("directive: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes raw YAML bytes into a File. Parse itself only fails for
// malformed YAML, which is genuinely file-wide; per-mapper directive
// invariants (duplicate field directives on the same target path,
// references to a target path that is not a syntactically valid dotted
// identifier chain) are validated per mapper and recorded on that mapper's
// own ValidationErrors rather than aborting the rest of the file, so one bad
// mapper in a multi-mapper batch never prevents its siblings from resolving.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("directive: parse: %w", err)
	}

	for i := range f.Mappers {
		f.Mappers[i].ValidationErrors = validateMapper(&f.Mappers[i])
	}

	return &f, nil
}

// validateMapper checks one mapper's directive target paths, returning one
// message per violation rather than stopping at the first.
func validateMapper(m *MapperDescriptor) []string {
	var errs []string

	seen := make(map[string]bool, len(m.Fields))

	for _, fd := range m.Fields {
		if _, ok := ParsePath(fd.Target); !ok {
			errs = append(errs, fmt.Sprintf("invalid target path %q", fd.Target))
			continue
		}

		if seen[fd.Target] {
			errs = append(errs, fmt.Sprintf("duplicate field directive for %q", fd.Target))
			continue
		}

		seen[fd.Target] = true
	}

	for _, ig := range m.Ignore {
		if _, ok := ParsePath(ig.Target); !ok {
			errs = append(errs, fmt.Sprintf("invalid ignore target %q", ig.Target))
		}
	}

	return errs
}

// Marshal serializes a File back to YAML, useful for round-trip tests.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile marshals f and writes it to path.
func WriteFile(path string, f *File) error {
	data, err := Marshal(f)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// FieldDirectiveFor returns the directive bound to the exact target path, if
// any. At most one directive may target a given path (enforced at parse
// time), so the first match is the only match.
func (m MapperDescriptor) FieldDirectiveFor(path string) (FieldDirective, bool) {
	for _, fd := range m.Fields {
		if fd.Target == path {
			return fd, true
		}
	}

	return FieldDirective{}, false
}

// IgnoreDirectiveFor returns the ignore entry targeting the exact path, if
// any.
func (m MapperDescriptor) IgnoreDirectiveFor(path string) (IgnoreEntry, bool) {
	for _, ig := range m.Ignore {
		if ig.Target == path {
			return ig, true
		}
	}

	return IgnoreEntry{}, false
}

// DirectivesUnder returns every field directive whose target path is
// strictly nested under prefix or equal to it — used by the Nested Object
// Analyzer to decide whether a directive forces inline expansion (spec.md
// §4.5 rule 2).
func (m MapperDescriptor) DirectivesUnder(prefix string) []FieldDirective {
	prefixPath, ok := ParsePath(prefix)
	if !ok {
		return nil
	}

	var out []FieldDirective

	for _, fd := range m.Fields {
		p, ok := ParsePath(fd.Target)
		if ok && p.Under(prefixPath) {
			out = append(out, fd)
		}
	}

	return out
}
