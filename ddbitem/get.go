package ddbitem

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// lookup resolves key against req, reporting whether the caller should
// proceed to decode, return the zero value, or fail.
func lookup(item Item, key string, req Requiredness) (av types.AttributeValue, present bool, err error) {
	av, present = item[key]
	if !present {
		if req == Required || req == InferFromNullability {
			return nil, false, &ErrMissingKey{Key: key}
		}

		return nil, false, nil
	}

	if isNull(av) {
		return nil, false, nil
	}

	return av, true, nil
}

// Present reports whether key holds a non-NULL attribute, applying req's
// missing-key semantics. Generated code uses it to decide whether to decode
// a nullable collection member at all before taking its address.
func Present(item Item, key string, req Requiredness) (bool, error) {
	_, present, err := lookup(item, key, req)

	return present, err
}

// GetString reads a string attribute. Only an S attribute is accepted; any
// other stored kind is an ErrUnsupportedKind.
func GetString(item Item, key string, req Requiredness) (string, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return "", err
	}

	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return "", &ErrUnsupportedKind{Key: key, Want: "S", Got: av}
	}

	return s.Value, nil
}

// GetNullableString is GetString's optional-member counterpart.
func GetNullableString(item Item, key string, req Requiredness) (*string, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "S", Got: av}
	}

	v := s.Value

	return &v, nil
}

// GetBool reads a boolean attribute.
func GetBool(item Item, key string, req Requiredness) (bool, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return false, err
	}

	b, ok := av.(*types.AttributeValueMemberBOOL)
	if !ok {
		return false, &ErrUnsupportedKind{Key: key, Want: "BOOL", Got: av}
	}

	return b.Value, nil
}

// GetNullableBool is GetBool's optional-member counterpart.
func GetNullableBool(item Item, key string, req Requiredness) (*bool, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	b, ok := av.(*types.AttributeValueMemberBOOL)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "BOOL", Got: av}
	}

	v := b.Value

	return &v, nil
}

func numericText(key string, av types.AttributeValue) (string, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		return v.Value, nil
	case *types.AttributeValueMemberS:
		return v.Value, nil
	default:
		return "", &ErrUnsupportedKind{Key: key, Want: "N", Got: av}
	}
}

// Integer is the set of Go integer kinds the numeric helpers accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of Go floating-point kinds the numeric helpers accept.
type Float interface {
	~float32 | ~float64
}

// GetInteger reads an integer attribute of any width, stored as decimal text
// per the invariant-culture numeric encoding.
func GetInteger[T Integer](item Item, key string, req Requiredness) (T, error) {
	var zero T

	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return zero, err
	}

	text, err := numericText(key, av)
	if err != nil {
		return zero, err
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return zero, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return T(n), nil
}

// GetNullableInteger is GetInteger's optional-member counterpart.
func GetNullableInteger[T Integer](item Item, key string, req Requiredness) (*T, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	text, err := numericText(key, av)
	if err != nil {
		return nil, err
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	v := T(n)

	return &v, nil
}

// GetFloat reads a round-trip decimal-text floating-point attribute.
func GetFloat[T Float](item Item, key string, req Requiredness) (T, error) {
	var zero T

	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return zero, err
	}

	text, err := numericText(key, av)
	if err != nil {
		return zero, err
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return zero, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return T(n), nil
}

// GetNullableFloat is GetFloat's optional-member counterpart.
func GetNullableFloat[T Float](item Item, key string, req Requiredness) (*T, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	text, err := numericText(key, av)
	if err != nil {
		return nil, err
	}

	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	v := T(n)

	return &v, nil
}

// GetDecimal reads a culture-invariant decimal-text attribute into an exact
// decimal.Decimal, avoiding the precision loss of float64.
func GetDecimal(item Item, key string, req Requiredness) (decimal.Decimal, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return decimal.Zero, err
	}

	text, err := numericText(key, av)
	if err != nil {
		return decimal.Zero, err
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return d, nil
}

// GetNullableDecimal is GetDecimal's optional-member counterpart.
func GetNullableDecimal(item Item, key string, req Requiredness) (*decimal.Decimal, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	text, err := numericText(key, av)
	if err != nil {
		return nil, err
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return &d, nil
}

// GetTime reads an ISO-8601 instant attribute under the given layout
// (RFC3339Nano, "O", by default).
func GetTime(item Item, key string, req Requiredness, layout string) (time.Time, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return time.Time{}, err
	}

	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return time.Time{}, &ErrUnsupportedKind{Key: key, Want: "S", Got: av}
	}

	t, err := time.Parse(layout, s.Value)
	if err != nil {
		return time.Time{}, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return t, nil
}

// GetNullableTime is GetTime's optional-member counterpart.
func GetNullableTime(item Item, key string, req Requiredness, layout string) (*time.Time, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "S", Got: av}
	}

	t, err := time.Parse(layout, s.Value)
	if err != nil {
		return nil, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return &t, nil
}

// GetDuration reads a "hh:mm:ss[.fraction]"-style duration attribute.
func GetDuration(item Item, key string, req Requiredness) (time.Duration, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return 0, err
	}

	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return 0, &ErrUnsupportedKind{Key: key, Want: "S", Got: av}
	}

	d, err := parseClockDuration(s.Value)
	if err != nil {
		return 0, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return d, nil
}

// GetNullableDuration is GetDuration's optional-member counterpart.
func GetNullableDuration(item Item, key string, req Requiredness) (*time.Duration, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "S", Got: av}
	}

	d, err := parseClockDuration(s.Value)
	if err != nil {
		return nil, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return &d, nil
}

// GetUUID reads an 8-4-4-4-12 hex UUID attribute.
func GetUUID(item Item, key string, req Requiredness) (uuid.UUID, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return uuid.UUID{}, err
	}

	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return uuid.UUID{}, &ErrUnsupportedKind{Key: key, Want: "S", Got: av}
	}

	id, err := uuid.Parse(s.Value)
	if err != nil {
		return uuid.UUID{}, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return id, nil
}

// GetNullableUUID is GetUUID's optional-member counterpart.
func GetNullableUUID(item Item, key string, req Requiredness) (*uuid.UUID, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "S", Got: av}
	}

	id, err := uuid.Parse(s.Value)
	if err != nil {
		return nil, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return &id, nil
}
