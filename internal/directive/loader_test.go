package directive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sr9000dev/ddbmapper/internal/directive"
)

const sampleYAML = `
mappers:
  - name: PersonMapper
    model: "example.com/m.Person"
    naming: CamelCase
    requiredness: InferFromNullability
    fields:
      - target: "ShippingAddress.Line1"
        key: "addr_line1"
        required: Required
    ignore:
      - "InternalNotes"
      - target: "DebugTrace"
        direction: ToItemOnly
`

func TestParse(t *testing.T) {
	f, err := directive.Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, f.Mappers, 1)

	m := f.Mappers[0]
	require.Equal(t, "PersonMapper", m.Name)
	require.True(t, m.OmitNullDefault())
	require.False(t, m.OmitEmptyStringDefault())

	fd, ok := m.FieldDirectiveFor("ShippingAddress.Line1")
	require.True(t, ok)
	require.Equal(t, "addr_line1", fd.Key)

	ig, ok := m.IgnoreDirectiveFor("InternalNotes")
	require.True(t, ok)
	require.Equal(t, directive.Both, ig.EffectiveDirection())

	ig2, ok := m.IgnoreDirectiveFor("DebugTrace")
	require.True(t, ok)
	require.Equal(t, directive.ToItemOnly, ig2.Direction)
}

func TestParseRecordsDuplicateDirectiveWithoutFailingTheFile(t *testing.T) {
	doc := `
mappers:
  - name: M
    model: "example.com/m.M"
    fields:
      - target: "A"
      - target: "A"
  - name: N
    model: "example.com/m.N"
`
	f, err := directive.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, f.Mappers, 2)

	require.Len(t, f.Mappers[0].ValidationErrors, 1)
	require.Contains(t, f.Mappers[0].ValidationErrors[0], `duplicate field directive for "A"`)

	require.Empty(t, f.Mappers[1].ValidationErrors)
}

func TestParseRecordsInvalidTargetPath(t *testing.T) {
	doc := `
mappers:
  - name: M
    model: "example.com/m.M"
    fields:
      - target: ".bad"
`
	f, err := directive.Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, f.Mappers[0].ValidationErrors, 1)
	require.Contains(t, f.Mappers[0].ValidationErrors[0], `invalid target path`)
}

func TestDirectivesUnder(t *testing.T) {
	f, err := directive.Parse([]byte(sampleYAML))
	require.NoError(t, err)

	under := f.Mappers[0].DirectivesUnder("ShippingAddress")
	require.Len(t, under, 1)
	require.Equal(t, "ShippingAddress.Line1", under[0].Target)
}
