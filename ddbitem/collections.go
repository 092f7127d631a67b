package ddbitem

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// GetList decodes an L-attribute into a slice of T using decodeElem for each
// member. Returns the zero slice (nil) when the key is Optional and absent.
func GetList[T any](item Item, key string, req Requiredness, decodeElem func(types.AttributeValue) (T, error)) ([]T, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	l, ok := av.(*types.AttributeValueMemberL)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "L", Got: av}
	}

	out := make([]T, len(l.Value))

	for i, elem := range l.Value {
		v, err := decodeElem(elem)
		if err != nil {
			return nil, &ErrParseFailure{Key: key, Reason: err.Error()}
		}

		out[i] = v
	}

	return out, nil
}

// SetList encodes a slice of T as an L-attribute. Unlike sets, empty and nil
// lists ARE written (subject to omitEmptyStrings treating a nil slice as
// "empty" when requested).
func SetList[T any](item Item, key string, value []T, omitEmptyStrings bool, encodeElem func(T) types.AttributeValue) {
	elems := make([]types.AttributeValue, len(value))
	for i, v := range value {
		elems[i] = encodeElem(v)
	}

	writeOrOmit(item, key, len(value) == 0, omitEmptyStrings, &types.AttributeValueMemberL{Value: elems})
}

// SetNullableList is SetList's optional-member counterpart.
func SetNullableList[T any](item Item, key string, value []T, omitEmptyStrings, omitNull bool, encodeElem func(T) types.AttributeValue) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetList(item, key, value, omitEmptyStrings, encodeElem)
}

// GetMap decodes an M-attribute into a map[string]T using decodeElem for
// each value.
func GetMap[T any](item Item, key string, req Requiredness, decodeElem func(types.AttributeValue) (T, error)) (map[string]T, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	m, ok := av.(*types.AttributeValueMemberM)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "M", Got: av}
	}

	out := make(map[string]T, len(m.Value))

	for k, elem := range m.Value {
		v, err := decodeElem(elem)
		if err != nil {
			return nil, &ErrParseFailure{Key: key, Reason: err.Error()}
		}

		out[k] = v
	}

	return out, nil
}

// SetMap encodes a map[string]T as an M-attribute.
func SetMap[T any](item Item, key string, value map[string]T, omitEmptyStrings bool, encodeElem func(T) types.AttributeValue) {
	elems := make(map[string]types.AttributeValue, len(value))
	for k, v := range value {
		elems[k] = encodeElem(v)
	}

	writeOrOmit(item, key, len(value) == 0, omitEmptyStrings, &types.AttributeValueMemberM{Value: elems})
}

// SetNullableMap is SetMap's optional-member counterpart.
func SetNullableMap[T any](item Item, key string, value map[string]T, omitEmptyStrings, omitNull bool, encodeElem func(T) types.AttributeValue) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetMap(item, key, value, omitEmptyStrings, encodeElem)
}
