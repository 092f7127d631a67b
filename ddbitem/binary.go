package ddbitem

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// GetBinary reads a B-attribute into a byte slice.
func GetBinary(item Item, key string, req Requiredness) ([]byte, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	b, ok := av.(*types.AttributeValueMemberB)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "B", Got: av}
	}

	return b.Value, nil
}

// SetBinary writes a B-attribute.
func SetBinary(item Item, key string, value []byte) {
	item[key] = &types.AttributeValueMemberB{Value: value}
}

// SetNullableBinary is SetBinary's optional-member counterpart.
func SetNullableBinary(item Item, key string, value []byte, omitNull bool) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetBinary(item, key, value)
}
