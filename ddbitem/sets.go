package ddbitem

import (
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// GetStringSet decodes an SS-attribute into a Set[string].
func GetStringSet(item Item, key string, req Requiredness) (Set[string], error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return Set[string]{}, err
	}

	ss, ok := av.(*types.AttributeValueMemberSS)
	if !ok {
		return Set[string]{}, &ErrUnsupportedKind{Key: key, Want: "SS", Got: av}
	}

	return NewSet(ss.Value...), nil
}

// SetStringSet writes a StringSet attribute. Per the non-emptiness
// invariant, an empty set is silently dropped rather than written.
func SetStringSet(item Item, key string, value Set[string]) {
	if value.Len() == 0 {
		return
	}

	vals := value.Values()
	sort.Strings(vals)
	item[key] = &types.AttributeValueMemberSS{Value: vals}
}

// GetNumberSet decodes an NS-attribute into a Set[T] of any integer kind.
// Floating-point element types are not accepted by the number-set helpers.
func GetNumberSet[T Integer](item Item, key string, req Requiredness) (Set[T], error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return Set[T]{}, err
	}

	ns, ok := av.(*types.AttributeValueMemberNS)
	if !ok {
		return Set[T]{}, &ErrUnsupportedKind{Key: key, Want: "NS", Got: av}
	}

	out := NewSet[T]()

	for _, text := range ns.Value {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Set[T]{}, &ErrParseFailure{Key: key, Reason: err.Error()}
		}

		out.Add(T(n))
	}

	return out, nil
}

// SetNumberSet writes a NumberSet attribute, dropping it when empty.
func SetNumberSet[T Integer](item Item, key string, value Set[T]) {
	if value.Len() == 0 {
		return
	}

	vals := value.Values()
	texts := make([]string, len(vals))

	for i, v := range vals {
		texts[i] = strconv.FormatInt(int64(v), 10)
	}

	sort.Strings(texts)
	item[key] = &types.AttributeValueMemberNS{Value: texts}
}

// GetBinarySet decodes a BS-attribute into a slice of byte slices.
func GetBinarySet(item Item, key string, req Requiredness) ([][]byte, error) {
	av, present, err := lookup(item, key, req)
	if err != nil || !present {
		return nil, err
	}

	bs, ok := av.(*types.AttributeValueMemberBS)
	if !ok {
		return nil, &ErrUnsupportedKind{Key: key, Want: "BS", Got: av}
	}

	return bs.Value, nil
}

// SetBinarySet writes a BinarySet attribute, dropping it when empty.
func SetBinarySet(item Item, key string, value [][]byte) {
	if len(value) == 0 {
		return
	}

	item[key] = &types.AttributeValueMemberBS{Value: value}
}
