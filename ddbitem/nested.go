package ddbitem

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// GetNestedItem extracts a nested M-attribute as an Item, for delegating
// decode to another mapper's FromItem.
func GetNestedItem(item Item, key string, req Requiredness) (Item, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	m, ok := av.(*types.AttributeValueMemberM)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "M", Got: av}
	}

	return m.Value, nil
}

// SetNestedItem writes a nested M-attribute from another mapper's ToItem
// output.
func SetNestedItem(item Item, key string, value Item) {
	item[key] = &types.AttributeValueMemberM{Value: value}
}
