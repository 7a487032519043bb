package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MarshalJSON renders y as plain JSON, keeping object key order.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := y.appendJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) appendJSON(buf *bytes.Buffer) error {
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case StringType:
		return appendJSONString(buf, y.String)
	case IntType:
		buf.WriteString(strconv.FormatInt(y.Int64, 10))
	case UintType:
		buf.WriteString(strconv.FormatUint(y.Uint64, 10))
	case FloatType:
		if math.IsNaN(y.Float64) || math.IsInf(y.Float64, 0) {
			return fmt.Errorf("%w: non finite float %v", ErrJSON, y.Float64)
		}
		buf.WriteString(strconv.FormatFloat(y.Float64, 'g', -1, 64))
	case DecimalType:
		buf.WriteString(y.Decimal.String())
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSONString(buf, f.String); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := y.Values[i].appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.appendJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedIR, y.Type)
	}
	return nil
}

func appendJSONString(buf *bytes.Buffer, s string) error {
	tmp := bytes.NewBuffer(nil)
	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}

// FromJSON decodes a single JSON value, keeping object key order.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := jsonValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data at offset %d", ErrJSON, dec.InputOffset())
	}
	return res, nil
}

func jsonValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			res := &Node{Type: ObjectType}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrJSON, err)
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("%w: unexpected key %v", ErrJSON, kt)
				}
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				res.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return res, nil
		case '[':
			res := &Node{Type: ArrayType}
			for dec.More() {
				v, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				res.Append(v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrJSON, err)
			}
			return res, nil
		default:
			return nil, fmt.Errorf("%w: unexpected %v", ErrJSON, t)
		}
	case string:
		return FromString(t), nil
	case bool:
		return FromBool(t), nil
	case nil:
		return Null(), nil
	case json.Number:
		return fromJSONNumber(string(t))
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ErrJSON, tok)
	}
}

func fromJSONNumber(v string) (*Node, error) {
	var res *Node
	if !strings.ContainsAny(v, ".eE") {
		if strings.HasPrefix(v, "-") {
			if i, err := strconv.ParseInt(v, 10, 64); err == nil {
				res = FromInt(i)
			}
		} else if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			res = FromUint(u)
		}
	}
	if res == nil {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrJSON, v)
		}
		res = FromFloat(f)
	}
	res.Number = v
	return res, nil
}
