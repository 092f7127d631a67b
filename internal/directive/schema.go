// Package directive defines the YAML-declared configuration surface a
// mapper reads: the mapper descriptor itself, field directives, and ignore
// directives. Its schema and loader are grounded on the teacher's
// gopkg.in/yaml.v3-based declarative mapping config, adapted from a
// struct-to-struct field-rename format to the attribute-key / requiredness /
// kind-override vocabulary this generator needs.
package directive

// Requiredness mirrors ddbitem.Requiredness at the configuration layer,
// before Member Analysis resolves InferFromNullability into a concrete
// Required/Optional choice.
type Requiredness string

const (
	Required              Requiredness = "Required"
	Optional              Requiredness = "Optional"
	InferFromNullability  Requiredness = "InferFromNullability"
	requirednessUnset     Requiredness = ""
)

// Kind forces a non-default attribute-value variant for a member.
type Kind string

const (
	KindDefault Kind = ""
	KindS       Kind = "S"
	KindN       Kind = "N"
	KindB       Kind = "B"
	KindBOOL    Kind = "BOOL"
	KindNULL    Kind = "NULL"
	KindL       Kind = "L"
	KindM       Kind = "M"
	KindSS      Kind = "SS"
	KindNS      Kind = "NS"
	KindBS      Kind = "BS"
)

// IgnoreDirection controls in which generated function(s) an ignored member
// is omitted.
type IgnoreDirection string

const (
	Both         IgnoreDirection = "Both"
	ToItemOnly   IgnoreDirection = "ToItemOnly"
	FromItemOnly IgnoreDirection = "FromItemOnly"
)

// Formats holds the mapper-wide default format literals for the families
// that need one.
type Formats struct {
	Temporal string `yaml:"temporal,omitempty"`
	Duration string `yaml:"duration,omitempty"`
	Enum     string `yaml:"enum,omitempty"`
	UUID     string `yaml:"uuid,omitempty"`
}

// DefaultFormats returns the spec-mandated defaults: ISO-8601 round-trip
// ("O"), clock-format duration ("c"), enum name ("G"), and 8-4-4-4-12 hex
// uuid ("D").
func DefaultFormats() Formats {
	return Formats{Temporal: "O", Duration: "c", Enum: "G", UUID: "D"}
}

// Generate selects which of the two directions a mapper emits.
type Generate struct {
	ToItem   *bool `yaml:"toItem,omitempty"`
	FromItem *bool `yaml:"fromItem,omitempty"`
}

// ToItemEnabled reports whether to_item generation was requested, default true.
func (g Generate) ToItemEnabled() bool {
	return g.ToItem == nil || *g.ToItem
}

// FromItemEnabled reports whether from_item generation was requested, default true.
func (g Generate) FromItemEnabled() bool {
	return g.FromItem == nil || *g.FromItem
}

// FieldDirective is a Member Directive: at most one per target path.
type FieldDirective struct {
	Target          string       `yaml:"target"`
	Key             string       `yaml:"key,omitempty"`
	Required        Requiredness `yaml:"required,omitempty"`
	Kind            Kind         `yaml:"kind,omitempty"`
	OmitNull        *bool        `yaml:"omitNull,omitempty"`
	OmitEmptyString *bool        `yaml:"omitEmptyString,omitempty"`
	Serialize       string       `yaml:"serialize,omitempty"`
	Deserialize     string       `yaml:"deserialize,omitempty"`
	Format          string       `yaml:"format,omitempty"`
}

// HasCustomSerialize reports whether this directive names a custom
// serialize method, short-circuiting standard Type Strategy resolution for
// that direction.
func (f FieldDirective) HasCustomSerialize() bool { return f.Serialize != "" }

// HasCustomDeserialize reports whether this directive names a custom
// deserialize method.
func (f FieldDirective) HasCustomDeserialize() bool { return f.Deserialize != "" }

// IgnoreEntry is an Ignore Directive, accepted either as a bare target path
// string (direction defaults to Both) or as an expanded map with an
// explicit direction — the flexible-shape technique the teacher's YAML
// types use throughout internal/mapping/yaml_types.go.
type IgnoreEntry struct {
	Target    string          `yaml:"target"`
	Direction IgnoreDirection `yaml:"direction,omitempty"`
}

// EffectiveDirection defaults an unset direction to Both.
func (e IgnoreEntry) EffectiveDirection() IgnoreDirection {
	if e.Direction == "" {
		return Both
	}

	return e.Direction
}

// UnmarshalYAML accepts either a plain string ("Field.Path") or a mapping
// ({target: Field.Path, direction: ToItemOnly}).
func (e *IgnoreEntry) UnmarshalYAML(unmarshal func(any) error) error {
	var asString string
	if err := unmarshal(&asString); err == nil {
		e.Target = asString
		e.Direction = Both

		return nil
	}

	type rawIgnoreEntry IgnoreEntry

	var raw rawIgnoreEntry
	if err := unmarshal(&raw); err != nil {
		return err
	}

	*e = IgnoreEntry(raw)

	return nil
}

// ConstructorMarkers lists one or more constructor-preference marker names
// for a model, accepted in YAML either as a single string or as a sequence —
// the Go reinterpretation of §4.6's "constructor-preference marker, on a
// constructor of the model": Go has no attribute to attach directly to a
// function declaration, so the marker is instead a name on the mapper
// descriptor, and more than one name is how a directive author expresses
// "more than one constructor marked preferred" (fatal per §4.6 priority 1
// when more than one of the names actually resolves to a function in the
// model's package).
type ConstructorMarkers []string

// UnmarshalYAML accepts either a bare string ("NewFoo") or a sequence
// (["NewFoo", "NewFooLegacy"]), the same flexible-shape technique
// IgnoreEntry uses above.
func (m *ConstructorMarkers) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		if single != "" {
			*m = ConstructorMarkers{single}
		}

		return nil
	}

	var list []string
	if err := unmarshal(&list); err != nil {
		return err
	}

	*m = ConstructorMarkers(list)

	return nil
}

// MapperDescriptor is the declarative surface attached to one generated
// mapper: its target model, naming + defaults, and ordered directives.
type MapperDescriptor struct {
	Name                 string             `yaml:"name"`
	Model                string             `yaml:"model"`
	Naming               string             `yaml:"naming,omitempty"`
	DefaultRequiredness  Requiredness       `yaml:"requiredness,omitempty"`
	OmitNull             *bool              `yaml:"omitNull,omitempty"`
	OmitEmptyString      *bool              `yaml:"omitEmptyString,omitempty"`
	Formats              Formats            `yaml:"formats,omitempty"`
	Generate             Generate           `yaml:"generate,omitempty"`
	Fields               []FieldDirective   `yaml:"fields,omitempty"`
	Ignore               []IgnoreEntry      `yaml:"ignore,omitempty"`
	PreferredConstructor ConstructorMarkers `yaml:"preferredConstructor,omitempty"`

	// ValidationErrors holds per-mapper directive validation failures found
	// by Parse (invalid target path syntax, duplicate field directive) that
	// Parse defers rather than aborting the whole file for: a diagnostic on
	// one mapper must not suppress emission of the rest of the batch (spec.md
	// §4.8 "Failure semantics"). Resolve turns each entry into a fatal
	// Diagnostic on this mapper's own plan.
	ValidationErrors []string `yaml:"-"`
}

// OmitNullDefault resolves the mapper-wide omit-null default, true unless
// explicitly disabled.
func (m MapperDescriptor) OmitNullDefault() bool {
	return m.OmitNull == nil || *m.OmitNull
}

// OmitEmptyStringDefault resolves the mapper-wide omit-empty-string default,
// false unless explicitly enabled.
func (m MapperDescriptor) OmitEmptyStringDefault() bool {
	return m.OmitEmptyString != nil && *m.OmitEmptyString
}

// File is the root of one YAML directive document; it may declare several
// mappers, matching the teacher's one-file-many-TypeMapping layout.
type File struct {
	Mappers []MapperDescriptor `yaml:"mappers"`
}
