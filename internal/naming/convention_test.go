package naming_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sr9000dev/ddbmapper/internal/naming"
)

func TestApplyConventions(t *testing.T) {
	cases := []struct {
		conv naming.Convention
		name string
		want string
	}{
		{naming.CamelCase, "FirstName", "firstName"},
		{naming.PascalCase, "firstName", "FirstName"},
		{naming.SnakeCase, "FirstName", "first_name"},
		{naming.KebabCase, "FirstName", "first-name"},
		{naming.UpperSnakeCase, "FirstName", "FIRST_NAME"},
		{naming.Preserve, "FirstName", "FirstName"},
		{naming.CamelCase, "OrderID", "orderId"},
		{naming.SnakeCase, "XMLParser", "xml_parser"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, naming.Apply(tc.conv, tc.name))
	}
}

func TestParseConvention(t *testing.T) {
	c, ok := naming.ParseConvention("Upper-SnakeCase")
	require.True(t, ok)
	require.Equal(t, naming.UpperSnakeCase, c)

	_, ok = naming.ParseConvention("")
	require.True(t, ok)

	_, ok = naming.ParseConvention("bogus")
	require.False(t, ok)
}
