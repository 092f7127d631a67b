package scan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sr9000dev/ddbmapper/internal/scan"
)

const fixturePkg = "github.com/sr9000dev/ddbmapper/internal/scan/testdata/fixture"

func TestStructOfScansExportedFieldsOnly(t *testing.T) {
	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	info, err := s.StructOf(fixturePkg, "Person")
	require.NoError(t, err)

	names := make([]string, len(info.Fields))
	for i, f := range info.Fields {
		names[i] = f.Name
	}

	require.Equal(t, []string{"FirstName", "LastName", "Nickname", "Status"}, names)
}

func TestFieldNullability(t *testing.T) {
	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	info, err := s.StructOf(fixturePkg, "Person")
	require.NoError(t, err)

	nick, ok := info.FieldByName("Nickname")
	require.True(t, ok)
	require.True(t, nick.Nullable())

	first, ok := info.FieldByName("FirstName")
	require.True(t, ok)
	require.False(t, first.Nullable())
}

func TestIsEnumLike(t *testing.T) {
	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	named, err := s.FindNamed(fixturePkg, "Status")
	require.NoError(t, err)
	require.True(t, s.IsEnumLike(named))

	personNamed, err := s.FindNamed(fixturePkg, "Person")
	require.NoError(t, err)
	require.False(t, s.IsEnumLike(personNamed))
}

func TestHasMethodDetectsHook(t *testing.T) {
	s, err := scan.Load(fixturePkg)
	require.NoError(t, err)

	named, err := s.FindNamed(fixturePkg, "Person")
	require.NoError(t, err)

	_, ok := s.HasMethod(named, "BeforeToItem")
	require.True(t, ok)

	_, ok = s.HasMethod(named, "NoSuchHook")
	require.False(t, ok)
}
