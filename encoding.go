package fpdecimal

import (
	"database/sql/driver"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted.
// JSON null leaves the decimal unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	var err error
	*d, err = Parse(s)
	return err
}

// MarshalJSON implements [json.Marshaler] interface.
// The decimal is encoded as a JSON string, such as "1.5".
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	s := d.String()
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] interface.
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (d *Decimal) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return ErrParse.New("line %v: expected scalar, got %v", value.Line, value.ShortTag())
	}
	var err error
	*d, err = Parse(value.Value)
	return err
}

// MarshalYAML implements [yaml.Marshaler] interface.
// The decimal is encoded as a plain scalar, such as 1.5.
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (d Decimal) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: d.String()}, nil
}

// MarshalLogObject implements [zapcore.ObjectMarshaler] interface,
// so that decimals can be logged with [zap.Object].
//
// [zapcore.ObjectMarshaler]: https://pkg.go.dev/go.uber.org/zap/zapcore#ObjectMarshaler
// [zap.Object]: https://pkg.go.dev/go.uber.org/zap#Object
func (d Decimal) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("decimal", d.String())
	return nil
}

// Scan implements the [sql.Scanner] interface.
// Strings, byte slices and integers are supported.
// Floating-point values are rejected.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d = NewFromInt64(value)
	case uint64:
		*d = NewFromUint64(value)
	case float32, float64:
		err = ErrParse.New("failed to convert from %T to %T: floating-point values are not supported", value, Decimal{})
	default:
		err = ErrParse.New("failed to convert from %T to %T", value, Decimal{})
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// NullDecimal represents a decimal that can be null.
// Its zero value is null.
// NullDecimal is not thread-safe.
type NullDecimal struct {
	Decimal Decimal
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullDecimal) Scan(value any) error {
	if value == nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return nil
	}
	err := n.Decimal.Scan(value)
	if err != nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullDecimal) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Decimal.Value()
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullDecimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Decimal = Decimal{}
		n.Valid = false
		return nil
	}
	err := n.Decimal.UnmarshalJSON(data)
	if err != nil {
		n.Decimal = Decimal{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON implements [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullDecimal) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Decimal.MarshalJSON()
}

// MarshalLogObject implements [zapcore.ObjectMarshaler] interface.
//
// [zapcore.ObjectMarshaler]: https://pkg.go.dev/go.uber.org/zap/zapcore#ObjectMarshaler
func (n NullDecimal) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddBool("valid", n.Valid)
	if n.Valid {
		return n.Decimal.MarshalLogObject(enc)
	}
	return nil
}

// String returns the decimal or "null".
func (n NullDecimal) String() string {
	if !n.Valid {
		return "null"
	}
	return n.Decimal.String()
}
