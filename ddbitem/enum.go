package ddbitem

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// GetEnum reads an enum-typed attribute. format/parse are supplied by
// generated code and encode the mapper's resolved enum format (its "G"
// name-based or "D" ordinal-based literal). defaultVal is used when the key
// is absent under Optional requiredness.
func GetEnum[T any](item Item, key string, req Requiredness, parse func(string) (T, error), defaultVal T) (T, error) {
	av, present, err := lookup(item, key, req)
	if err != nil {
		return defaultVal, err
	}

	if !present {
		return defaultVal, nil
	}

	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return defaultVal, &ErrUnsupportedKind{Key: key, Want: "S", Got: av}
	}

	v, err := parse(s.Value)
	if err != nil {
		return defaultVal, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return v, nil
}

// GetNullableEnum is GetEnum's optional-member counterpart; there is no
// default-literal argument because absence or Null both yield nil.
func GetNullableEnum[T any](item Item, key string, req Requiredness, parse func(string) (T, error)) (*T, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "S", Got: av}
	}

	v, err := parse(s.Value)
	if err != nil {
		return nil, &ErrParseFailure{Key: key, Reason: err.Error()}
	}

	return &v, nil
}

// SetEnum writes an enum-typed attribute using the mapper's resolved format.
func SetEnum[T any](item Item, key string, value T, format func(T) string) {
	item[key] = &types.AttributeValueMemberS{Value: format(value)}
}

// SetNullableEnum is SetEnum's optional-member counterpart.
func SetNullableEnum[T any](item Item, key string, value *T, format func(T) string, omitNull bool) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetEnum(item, key, *value, format)
}
