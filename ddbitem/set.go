package ddbitem

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func writeOrOmit(item Item, key string, empty bool, omitEmptyStrings bool, av types.AttributeValue) {
	if empty && omitEmptyStrings {
		return
	}

	item[key] = av
}

// SetString writes a string attribute, honoring omitEmptyStrings.
func SetString(item Item, key string, value string, omitEmptyStrings bool) {
	writeOrOmit(item, key, value == "", omitEmptyStrings, &types.AttributeValueMemberS{Value: value})
}

// SetNullableString is SetString's optional-member counterpart.
func SetNullableString(item Item, key string, value *string, omitEmptyStrings, omitNull bool) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetString(item, key, *value, omitEmptyStrings)
}

// SetBool writes a boolean attribute.
func SetBool(item Item, key string, value bool) {
	item[key] = &types.AttributeValueMemberBOOL{Value: value}
}

// SetNullableBool is SetBool's optional-member counterpart.
func SetNullableBool(item Item, key string, value *bool, omitNull bool) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetBool(item, key, *value)
}

// SetInteger writes an integer attribute of any width as decimal text.
func SetInteger[T Integer](item Item, key string, value T) {
	item[key] = &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(value), 10)}
}

// SetNullableInteger is SetInteger's optional-member counterpart.
func SetNullableInteger[T Integer](item Item, key string, value *T, omitNull bool) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetInteger(item, key, *value)
}

// SetFloat writes a floating-point attribute as round-trip decimal text.
func SetFloat[T Float](item Item, key string, value T) {
	item[key] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(float64(value), 'g', -1, 64)}
}

// SetNullableFloat is SetFloat's optional-member counterpart.
func SetNullableFloat[T Float](item Item, key string, value *T, omitNull bool) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetFloat(item, key, *value)
}

// SetDecimal writes an exact decimal attribute.
func SetDecimal(item Item, key string, value decimal.Decimal) {
	item[key] = &types.AttributeValueMemberN{Value: value.String()}
}

// SetNullableDecimal is SetDecimal's optional-member counterpart.
func SetNullableDecimal(item Item, key string, value *decimal.Decimal, omitNull bool) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetDecimal(item, key, *value)
}

// SetTime writes an instant attribute under the given layout.
func SetTime(item Item, key string, value time.Time, layout string) {
	item[key] = &types.AttributeValueMemberS{Value: value.Format(layout)}
}

// SetNullableTime is SetTime's optional-member counterpart.
func SetNullableTime(item Item, key string, value *time.Time, layout string, omitNull bool) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetTime(item, key, *value, layout)
}

// SetDuration writes a "hh:mm:ss[.fraction]" duration attribute.
func SetDuration(item Item, key string, value time.Duration) {
	item[key] = &types.AttributeValueMemberS{Value: formatClockDuration(value)}
}

// SetNullableDuration is SetDuration's optional-member counterpart.
func SetNullableDuration(item Item, key string, value *time.Duration, omitNull bool) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetDuration(item, key, *value)
}

// SetUUID writes an 8-4-4-4-12 hex UUID attribute.
func SetUUID(item Item, key string, value uuid.UUID) {
	item[key] = &types.AttributeValueMemberS{Value: value.String()}
}

// SetNullableUUID is SetUUID's optional-member counterpart.
func SetNullableUUID(item Item, key string, value *uuid.UUID, omitNull bool) {
	if value == nil {
		if !omitNull {
			item[key] = &types.AttributeValueMemberNULL{Value: true}
		}

		return
	}

	SetUUID(item, key, *value)
}
