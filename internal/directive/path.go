package directive

import "strings"

// PathSegment is one dotted component of a target path.
type PathSegment struct {
	Name string
}

// FieldPath is a parsed dotted target path, e.g. "ShippingAddress.Line1".
// The first segment is always a declared member name on the mapper's model
// type; subsequent segments walk into nested objects.
type FieldPath struct {
	Segments []PathSegment
}

// String renders the path back to its dotted form.
func (p FieldPath) String() string {
	names := make([]string, len(p.Segments))
	for i, s := range p.Segments {
		names[i] = s.Name
	}

	return strings.Join(names, ".")
}

// Root returns the first segment's name, or "" for an empty path.
func (p FieldPath) Root() string {
	if len(p.Segments) == 0 {
		return ""
	}

	return p.Segments[0].Name
}

// IsSimple reports whether the path is a single, unqualified member name.
func (p FieldPath) IsSimple() bool {
	return len(p.Segments) == 1
}

// IsEmpty reports whether the path has no segments.
func (p FieldPath) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Under reports whether p is strictly nested under prefix (p starts with
// prefix's segments and has at least one more segment), or equals prefix.
func (p FieldPath) Under(prefix FieldPath) bool {
	if len(p.Segments) < len(prefix.Segments) {
		return false
	}

	for i, seg := range prefix.Segments {
		if p.Segments[i].Name != seg.Name {
			return false
		}
	}

	return true
}

// ParsePath splits a dotted target path string into a FieldPath. Each
// segment must be a valid Go identifier.
func ParsePath(s string) (FieldPath, bool) {
	if s == "" {
		return FieldPath{}, false
	}

	parts := strings.Split(s, ".")
	segments := make([]PathSegment, 0, len(parts))

	for _, part := range parts {
		if !isValidIdent(part) {
			return FieldPath{}, false
		}

		segments = append(segments, PathSegment{Name: part})
	}

	return FieldPath{Segments: segments}, true
}

func isValidIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || isLetter(r):
		case isDigit(r) && i > 0:
		default:
			return false
		}
	}

	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
