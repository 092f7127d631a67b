package ddbitem_test

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sr9000dev/ddbmapper/ddbitem"
)

func TestStringRoundTrip(t *testing.T) {
	item := ddbitem.Item{}
	ddbitem.SetString(item, "name", "Ada", false)

	got, err := ddbitem.GetString(item, "name", ddbitem.Required)
	require.NoError(t, err)
	require.Equal(t, "Ada", got)
}

func TestSetStringOmitsEmptyWhenRequested(t *testing.T) {
	item := ddbitem.Item{}
	ddbitem.SetString(item, "nickname", "", true)
	require.NotContains(t, item, "nickname")
}

func TestNullableStringOmitNull(t *testing.T) {
	item := ddbitem.Item{}
	ddbitem.SetNullableString(item, "nickname", nil, false, true)
	require.NotContains(t, item, "nickname")

	ddbitem.SetNullableString(item, "nickname", nil, false, false)
	require.Contains(t, item, "nickname")
	_, ok := item["nickname"].(*types.AttributeValueMemberNULL)
	require.True(t, ok)
}

func TestGetStringMissingRequired(t *testing.T) {
	item := ddbitem.Item{}
	_, err := ddbitem.GetString(item, "name", ddbitem.Required)
	require.Error(t, err)

	var missing *ddbitem.ErrMissingKey
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "name", missing.Key)
}

func TestGetStringMissingOptional(t *testing.T) {
	item := ddbitem.Item{}
	got, err := ddbitem.GetString(item, "name", ddbitem.Optional)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestIntegerRoundTrip(t *testing.T) {
	item := ddbitem.Item{}
	ddbitem.SetInteger[int32](item, "age", 36)

	got, err := ddbitem.GetInteger[int32](item, "age", ddbitem.Required)
	require.NoError(t, err)
	require.Equal(t, int32(36), got)
}

func TestDecimalRoundTrip(t *testing.T) {
	item := ddbitem.Item{}
	d := decimal.RequireFromString("19.99")
	ddbitem.SetDecimal(item, "price", d)

	got, err := ddbitem.GetDecimal(item, "price", ddbitem.Required)
	require.NoError(t, err)
	require.True(t, d.Equal(got))
}

func TestTimeRoundTripISO8601(t *testing.T) {
	item := ddbitem.Item{}
	now := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	ddbitem.SetTime(item, "createdAt", now, time.RFC3339Nano)

	got, err := ddbitem.GetTime(item, "createdAt", ddbitem.Required, time.RFC3339Nano)
	require.NoError(t, err)
	require.True(t, now.Equal(got))
}

func TestDurationRoundTrip(t *testing.T) {
	item := ddbitem.Item{}
	d := 90*time.Minute + 30*time.Second
	ddbitem.SetDuration(item, "ttl", d)

	got, err := ddbitem.GetDuration(item, "ttl", ddbitem.Required)
	require.NoError(t, err)
	require.Equal(t, d, got)
}

func TestUUIDRoundTrip(t *testing.T) {
	item := ddbitem.Item{}
	id := uuid.New()
	ddbitem.SetUUID(item, "id", id)

	got, err := ddbitem.GetUUID(item, "id", ddbitem.Required)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestBoolRoundTrip(t *testing.T) {
	item := ddbitem.Item{}
	ddbitem.SetBool(item, "active", true)

	got, err := ddbitem.GetBool(item, "active", ddbitem.Required)
	require.NoError(t, err)
	require.True(t, got)
}

func TestGetBoolMissingRequired(t *testing.T) {
	item := ddbitem.Item{}
	_, err := ddbitem.GetBool(item, "active", ddbitem.Required)
	require.Error(t, err)

	var missing *ddbitem.ErrMissingKey
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "active", missing.Key)
}

func TestGetBoolMissingOptional(t *testing.T) {
	item := ddbitem.Item{}
	got, err := ddbitem.GetBool(item, "active", ddbitem.Optional)
	require.NoError(t, err)
	require.False(t, got)
}

func TestStringSetEmptyIsDropped(t *testing.T) {
	item := ddbitem.Item{}
	ddbitem.SetStringSet(item, "tags", ddbitem.NewSet[string]())
	require.NotContains(t, item, "tags")
}

func TestStringSetDeduplicates(t *testing.T) {
	item := ddbitem.Item{}
	ddbitem.SetStringSet(item, "tags", ddbitem.NewSet("a", "b", "a"))

	ss, ok := item["tags"].(*types.AttributeValueMemberSS)
	require.True(t, ok)
	require.ElementsMatch(t, []string{"a", "b"}, ss.Value)
}

func TestListRoundTrip(t *testing.T) {
	item := ddbitem.Item{}
	values := []int32{1, 2, 3}
	ddbitem.SetList(item, "nums", values, false, func(v int32) types.AttributeValue {
		return &types.AttributeValueMemberN{Value: "ignored"}
	})
	require.Contains(t, item, "nums")

	got, err := ddbitem.GetList(item, "nums", ddbitem.Required, func(av types.AttributeValue) (int32, error) {
		return 0, nil
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
}
