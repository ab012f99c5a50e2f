package fpdecimal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

type order struct {
	Price    Decimal     `json:"price" yaml:"price"`
	Discount NullDecimal `json:"discount" yaml:"-"`
}

func TestDecimal_Text(t *testing.T) {
	tests := []string{"0", "-1.5", "0.000000000000000001", maxDecimal}
	for _, tt := range tests {
		d := MustParse(tt)
		text, err := d.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, tt, string(text))

		var got Decimal
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, d, got)
	}

	var d Decimal
	err := d.UnmarshalText([]byte("1.2.3"))
	assert.True(t, ErrParse.Has(err), "UnmarshalText(%q) = %v", "1.2.3", err)
}

func TestDecimal_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := json.Marshal(order{Price: MustParse("1.50")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"price":"1.5","discount":null}`, string(data))

		data, err = json.Marshal(order{
			Price:    MustParse("-0.000000000000000001"),
			Discount: NullDecimal{Decimal: MustParse("0.25"), Valid: true},
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"price":"-0.000000000000000001","discount":"0.25"}`, string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data         string
			wantPrice    string
			wantDiscount NullDecimal
		}{
			{`{"price":"1.5"}`, "1.5", NullDecimal{}},
			{`{"price":1.5}`, "1.5", NullDecimal{}},
			{`{"price":-2,"discount":"0.1"}`, "-2", NullDecimal{Decimal: MustParse("0.1"), Valid: true}},
			{`{"price":"0.1234567890123456789","discount":null}`, "0.123456789012345678", NullDecimal{}},
		}
		for _, tt := range tests {
			var got order
			require.NoError(t, json.Unmarshal([]byte(tt.data), &got), tt.data)
			assert.Equal(t, MustParse(tt.wantPrice), got.Price, tt.data)
			assert.Equal(t, tt.wantDiscount, got.Discount, tt.data)
		}
	})

	t.Run("null", func(t *testing.T) {
		got := order{Price: MustParse("7")}
		require.NoError(t, json.Unmarshal([]byte(`{"price":null}`), &got))
		assert.Equal(t, MustParse("7"), got.Price)
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			`{"price":"abc"}`,
			`{"price":"1e5"}`,
			`{"price":""}`,
			`{"price":true}`,
			`{"discount":"x"}`,
		}
		for _, tt := range tests {
			var got order
			assert.Error(t, json.Unmarshal([]byte(tt), &got), tt)
		}
	})
}

func TestDecimal_YAML(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		data, err := yaml.Marshal(order{Price: MustParse("1.50")})
		require.NoError(t, err)
		assert.Equal(t, "price: 1.5\n", string(data))
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			data, want string
		}{
			{"price: 1.5", "1.5"},
			{"price: \"-2.25\"", "-2.25"},
			{"price: 100", "100"},
		}
		for _, tt := range tests {
			var got order
			require.NoError(t, yaml.Unmarshal([]byte(tt.data), &got), tt.data)
			assert.Equal(t, MustParse(tt.want), got.Price, tt.data)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"price: abc",
			"price: [1, 2]",
			"price: {a: 1}",
			"price: 1e5",
		}
		for _, tt := range tests {
			var got order
			assert.Error(t, yaml.Unmarshal([]byte(tt), &got), tt)
		}
	})
}

func TestDecimal_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value any
			want  string
		}{
			{"1.5", "1.5"},
			{[]byte("-0.25"), "-0.25"},
			{int64(-7), "-7"},
			{uint64(18446744073709551615), "18446744073709551615"},
		}
		for _, tt := range tests {
			var got Decimal
			require.NoError(t, got.Scan(tt.value), "Scan(%v)", tt.value)
			assert.Equal(t, MustParse(tt.want), got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, 1.5, float32(1.5), true, "abc"}
		for _, tt := range tests {
			var got Decimal
			err := got.Scan(tt)
			assert.True(t, ErrParse.Has(err), "Scan(%v) = %v", tt, err)
		}
	})
}

func TestDecimal_Value(t *testing.T) {
	got, err := MustParse("-1.50").Value()
	require.NoError(t, err)
	assert.Equal(t, "-1.5", got)
}

func TestNullDecimal(t *testing.T) {
	t.Run("scan", func(t *testing.T) {
		var n NullDecimal
		require.NoError(t, n.Scan("2.5"))
		assert.True(t, n.Valid)
		assert.Equal(t, MustParse("2.5"), n.Decimal)
		assert.Equal(t, "2.5", n.String())

		require.NoError(t, n.Scan(nil))
		assert.False(t, n.Valid)
		assert.Equal(t, "null", n.String())

		assert.Error(t, n.Scan(2.5))
		assert.False(t, n.Valid)
	})

	t.Run("value", func(t *testing.T) {
		got, err := NullDecimal{}.Value()
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = NullDecimal{Decimal: MustParse("3"), Valid: true}.Value()
		require.NoError(t, err)
		assert.Equal(t, "3", got)
	})
}

func TestDecimal_MarshalLogObject(t *testing.T) {
	t.Run("encoder", func(t *testing.T) {
		enc := zapcore.NewMapObjectEncoder()
		require.NoError(t, MustParse("-1.25").MarshalLogObject(enc))
		assert.Equal(t, map[string]any{"decimal": "-1.25"}, enc.Fields)

		enc = zapcore.NewMapObjectEncoder()
		require.NoError(t, NullDecimal{}.MarshalLogObject(enc))
		assert.Equal(t, map[string]any{"valid": false}, enc.Fields)
	})

	t.Run("logger", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		log := zap.New(core)
		log.Info("filled",
			zap.Object("price", MustParse("101.5")),
			zap.Object("discount", NullDecimal{Decimal: MustParse("0.5"), Valid: true}),
		)

		entries := logs.FilterMessage("filled").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, map[string]any{"decimal": "101.5"}, fields["price"])
		assert.Equal(t, map[string]any{"decimal": "0.5", "valid": true}, fields["discount"])
	})
}
