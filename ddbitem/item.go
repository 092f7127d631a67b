// Package ddbitem is the runtime library invoked by generated caster code.
//
// It defines the Item type (a mapping from attribute key to attribute value)
// and the Get/Set primitives that generated ToItem/FromItem functions call.
// The package never performs reflection; every helper here is a plain,
// statically-typed function over github.com/aws/aws-sdk-go-v2's
// dynamodb/types.AttributeValue union.
package ddbitem

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a mapping from attribute key to attribute value. Keys are unique;
// insertion order carries no semantic meaning, though generated ToItem
// functions populate it in member-declaration order for reproducible output.
type Item = map[string]types.AttributeValue

// Requiredness controls behavior when a key is absent at deserialization.
type Requiredness int

const (
	// Required demands key presence; a missing key is ErrMissingKey.
	Required Requiredness = iota
	// Optional tolerates absence, yielding the zero value or nil.
	Optional
	// InferFromNullability behaves as Required for non-pointer Go fields
	// and Optional for pointer fields. The plan stage always resolves this
	// to a concrete Required or Optional literal before emitting a Get-X
	// call; generated code never passes InferFromNullability to a runtime
	// helper. Treated as Required if a caller passes it directly anyway.
	InferFromNullability
)

// Kind names a concrete AttributeValue variant, used to force a non-default
// wire representation (e.g. storing an integer as S instead of N).
type Kind int

const (
	KindDefault Kind = iota
	KindS
	KindN
	KindB
	KindBOOL
	KindNULL
	KindL
	KindM
	KindSS
	KindNS
	KindBS
)

// ErrMissingKey is returned when a Required (or InferFromNullability-derived
// Required) attribute key is absent from the item.
type ErrMissingKey struct {
	Key string
}

func (e *ErrMissingKey) Error() string {
	return fmt.Sprintf("ddbitem: missing required attribute key %q", e.Key)
}

// ErrParseFailure is returned when an attribute's textual or binary payload
// cannot be parsed into the requested Go type under invariant rules.
type ErrParseFailure struct {
	Key    string
	Reason string
}

func (e *ErrParseFailure) Error() string {
	return fmt.Sprintf("ddbitem: cannot parse attribute %q: %s", e.Key, e.Reason)
}

// ErrUnsupportedKind is returned when a helper is asked to interpret an
// attribute as a variant incompatible with the one actually stored, e.g.
// reading an L-value as a scalar string.
type ErrUnsupportedKind struct {
	Key  string
	Want string
	Got  types.AttributeValue
}

func (e *ErrUnsupportedKind) Error() string {
	return fmt.Sprintf("ddbitem: attribute %q: expected %s, got %T", e.Key, e.Want, e.Got)
}

func isNull(av types.AttributeValue) bool {
	n, ok := av.(*types.AttributeValueMemberNULL)
	return ok && n.Value
}
