package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int64
		want    string
	}{
		{"no reviews", nil, "0.0"},
		{"single review", []int64{4}, "4.0"},
		{"rounds 4.666 up", []int64{5, 5, 4}, "4.7"},
		{"half rounds up", []int64{5, 4, 4, 4}, "4.3"},
		{"exact half", []int64{5, 4}, "4.5"},
		{"rounds 1.333 down", []int64{1, 1, 2}, "1.3"},
		{"all fives", []int64{5, 5, 5, 5, 5}, "5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sum int64
			for _, r := range tt.ratings {
				sum += r
			}
			assert.Equal(t, tt.want, AverageRating(sum, int64(len(tt.ratings))).String())
		})
	}
}

func TestAverageRating_HalfUpOnHundredths(t *testing.T) {
	// 4.25 -> 4.3
	assert.Equal(t, "4.3", AverageRating(17, 4).String())
	// 4.35 -> 4.4 (87/20)
	assert.Equal(t, "4.4", AverageRating(87, 20).String())
	// 4.349.. -> 4.3
	assert.Equal(t, "4.3", AverageRating(313, 72).String())
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "530.00", want: "530.00"},
		{input: "530", want: "530.00"},
		{input: "89.5", want: "89.50"},
		{input: " 1299.99 ", want: "1299.99"},
		{input: "10.005", want: "10.01"},
		{input: "10.004", want: "10.00"},
		{input: ".5", want: "0.50"},
		{input: "abc", wantErr: true},
		{input: "1.2.3", wantErr: true},
		{input: "", wantErr: true},
		{input: ".", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMoney(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDecimal)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestMoney_JSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Price Money `json:"price"`
	}{Price: NewMoney(530, 0)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":"530.00"}`, string(out))

	var fromString struct {
		Price Money `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":"2450.50"}`), &fromString))
	assert.Equal(t, NewMoney(2450, 50), fromString.Price)

	var fromNumber struct {
		Price *Money `json:"price"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"price":199.9}`), &fromNumber))
	require.NotNil(t, fromNumber.Price)
	assert.Equal(t, "199.90", fromNumber.Price.String())

	var bad struct {
		Price Money `json:"price"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"price":"cheap"}`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"price":true}`), &bad))
}

func TestRating_JSON(t *testing.T) {
	out, err := json.Marshal(map[string]Rating{"rating": 47})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rating":"4.7"}`, string(out))

	var r Rating
	require.NoError(t, json.Unmarshal([]byte(`"5.0"`), &r))
	assert.Equal(t, Rating(50), r)
}

func TestMoney_BSONRoundTripAsDecimal128(t *testing.T) {
	type doc struct {
		Price  Money  `bson:"price"`
		Rating Rating `bson:"rating"`
	}

	data, err := bson.Marshal(doc{Price: NewMoney(530, 0), Rating: 47})
	require.NoError(t, err)

	raw := bson.Raw(data)
	_, isDecimal := raw.Lookup("price").Decimal128OK()
	assert.True(t, isDecimal, "price is stored as decimal128")

	var decoded doc
	require.NoError(t, bson.Unmarshal(data, &decoded))
	assert.Equal(t, NewMoney(530, 0), decoded.Price)
	assert.Equal(t, Rating(47), decoded.Rating)
}

func TestMoney_BSONDecodesOtherNumericForms(t *testing.T) {
	type doc struct {
		Price Money `bson:"price"`
	}

	d, err := primitive.ParseDecimal128("1.2E+3")
	require.NoError(t, err)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"decimal with exponent", d, "1200.00"},
		{"int32", int32(75), "75.00"},
		{"double", 99.95, "99.95"},
		{"string", "12.5", "12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := bson.Marshal(bson.M{"price": tt.value})
			require.NoError(t, err)

			var decoded doc
			require.NoError(t, bson.Unmarshal(data, &decoded))
			assert.Equal(t, tt.want, decoded.Price.String())
		})
	}
}
