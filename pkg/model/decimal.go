package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	moneyScale  = 2
	ratingScale = 1
)

var ErrInvalidDecimal = errors.New("invalid decimal value")

// Money is a non-float amount in hundredths. It travels as a string on the
// wire ("530.00") and as Decimal128 in the store.
type Money int64

func NewMoney(units int64, cents int64) Money {
	return Money(units*100 + cents)
}

func ParseMoney(s string) (Money, error) {
	v, err := parseFixed(s, moneyScale)
	if err != nil {
		return 0, err
	}
	return Money(v), nil
}

func (m Money) String() string {
	return formatFixed(int64(m), moneyScale)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	v, err := unmarshalFixedJSON(data, moneyScale)
	if err != nil {
		return err
	}
	if v != nil {
		*m = Money(*v)
	}
	return nil
}

func (m Money) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return marshalFixedBSON(int64(m), moneyScale)
}

func (m *Money) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v, err := unmarshalFixedBSON(t, data, moneyScale)
	if err != nil {
		return err
	}
	*m = Money(v)
	return nil
}

// Rating is a tour's derived average in tenths, "4.7" on the wire.
type Rating int64

func ParseRating(s string) (Rating, error) {
	v, err := parseFixed(s, ratingScale)
	if err != nil {
		return 0, err
	}
	return Rating(v), nil
}

// AverageRating is the mean of count ratings summing to sum, rounded half-up
// to one decimal. No ratings give 0.0.
func AverageRating(sum, count int64) Rating {
	if count <= 0 {
		return 0
	}
	return Rating((20*sum + count) / (2 * count))
}

func (r Rating) String() string {
	return formatFixed(int64(r), ratingScale)
}

func (r Rating) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	v, err := unmarshalFixedJSON(data, ratingScale)
	if err != nil {
		return err
	}
	if v != nil {
		*r = Rating(*v)
	}
	return nil
}

func (r Rating) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return marshalFixedBSON(int64(r), ratingScale)
}

func (r *Rating) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v, err := unmarshalFixedBSON(t, data, ratingScale)
	if err != nil {
		return err
	}
	*r = Rating(v)
	return nil
}

func formatFixed(v int64, scale int) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	pow := pow10(scale)
	return fmt.Sprintf("%s%d.%0*d", sign, v/pow, scale, v%pow)
}

// parseFixed reads a plain decimal string into an integer count of 10^-scale
// units. Extra fraction digits are rounded half-up.
func parseFixed(s string, scale int) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidDecimal)
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}

	roundUp := false
	if len(fracPart) > scale {
		roundUp = fracPart[scale] >= '5'
		fracPart = fracPart[:scale]
	}
	fracPart += strings.Repeat("0", scale-len(fracPart))

	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDecimal, err)
	}
	if roundUp {
		v++
	}
	if negative {
		v = -v
	}
	return v, nil
}

func unmarshalFixedJSON(data []byte, scale int) (*int64, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDecimal, data)
		}
		raw = n.String()
	}

	v, err := parseFixed(raw, scale)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func marshalFixedBSON(v int64, scale int) (bsontype.Type, []byte, error) {
	d, err := primitive.ParseDecimal128(formatFixed(v, scale))
	if err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(d)
}

func unmarshalFixedBSON(t bsontype.Type, data []byte, scale int) (int64, error) {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.Decimal128:
		d, ok := raw.Decimal128OK()
		if !ok {
			return 0, fmt.Errorf("%w: malformed decimal128", ErrInvalidDecimal)
		}
		return scaleDecimal128(d, scale)
	case bsontype.String:
		return parseFixed(raw.StringValue(), scale)
	case bsontype.Int32:
		return int64(raw.Int32()) * pow10(scale), nil
	case bsontype.Int64:
		return raw.Int64() * pow10(scale), nil
	case bsontype.Double:
		return parseFixed(strconv.FormatFloat(raw.Double(), 'f', -1, 64), scale)
	case bsontype.Null, bsontype.Undefined:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: cannot decode bson %s", ErrInvalidDecimal, t)
	}
}

func scaleDecimal128(d primitive.Decimal128, scale int) (int64, error) {
	bi, exp, err := d.BigInt()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDecimal, err)
	}

	shift := exp + scale
	ten := big.NewInt(10)
	if shift >= 0 {
		bi.Mul(bi, new(big.Int).Exp(ten, big.NewInt(int64(shift)), nil))
	} else {
		div := new(big.Int).Exp(ten, big.NewInt(int64(-shift)), nil)
		q, r := new(big.Int).QuoRem(bi, div, new(big.Int))
		if new(big.Int).Mul(new(big.Int).Abs(r), big.NewInt(2)).Cmp(div) >= 0 {
			if bi.Sign() < 0 {
				q.Sub(q, big.NewInt(1))
			} else {
				q.Add(q, big.NewInt(1))
			}
		}
		bi = q
	}

	if !bi.IsInt64() {
		return 0, fmt.Errorf("%w: out of range", ErrInvalidDecimal)
	}
	return bi.Int64(), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func pow10(n int) int64 {
	p := int64(1)
	for range n {
		p *= 10
	}
	return p
}
