package creditcard

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Encode writes c as {"pan":"<digits>","kind":"<code>"}. The zero value encodes as null.
// The PAN is a string because 19-digit numbers do not fit a JSON number losslessly.
func (c CreditCard) Encode(e *jx.Encoder) {
	if c.IsZero() {
		e.Null()

		return
	}
	e.ObjStart()
	e.FieldStart("pan")
	e.Str(c.String())
	e.FieldStart("kind")
	c.kind.Encode(e)
	e.ObjEnd()
}

// Decode reads a CreditCard from d. The number is validated with Parse; a kind
// field, when present, must agree with the classification of the number.
func (c *CreditCard) Decode(d *jx.Decoder) error {
	if c == nil {
		return errors.New("invalid: unable to decode CreditCard to nil")
	}
	if d.Next() == jx.Null {
		if err := d.Null(); err != nil {
			return errors.Wrap(err, "decode CreditCard")
		}
		*c = CreditCard{}

		return nil
	}

	var (
		pan     string
		hasPan  bool
		kind    Kind
		hasKind bool
	)
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "pan":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"pan\"")
			}
			pan, hasPan = v, true
		case "kind":
			if err := kind.Decode(d); err != nil {
				return errors.Wrap(err, "decode field \"kind\"")
			}
			hasKind = true
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode CreditCard")
	}

	if !hasPan {
		return errors.New("decode CreditCard: missing required field \"pan\"")
	}
	card, err := Parse(pan)
	if err != nil {
		return errors.Wrap(err, "decode CreditCard")
	}
	if hasKind && kind != card.kind {
		return errors.Errorf("decode CreditCard: kind %q does not match number (%q)", kind.Code(), card.kind.Code())
	}
	*c = card

	return nil
}

// MarshalJSON implements json.Marshaler.
func (c CreditCard) MarshalJSON() ([]byte, error) {
	e := jx.Encoder{}
	c.Encode(&e)

	return e.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CreditCard) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)

	return c.Decode(d)
}

// Encode writes the kind code as a JSON string.
func (k Kind) Encode(e *jx.Encoder) {
	e.Str(k.Code())
}

// Decode reads a kind code from d.
func (k *Kind) Decode(d *jx.Decoder) error {
	if k == nil {
		return errors.New("invalid: unable to decode Kind to nil")
	}
	v, err := d.StrBytes()
	if err != nil {
		return err
	}

	return k.UnmarshalText(v)
}

// MarshalJSON implements json.Marshaler.
func (k Kind) MarshalJSON() ([]byte, error) {
	e := jx.Encoder{}
	k.Encode(&e)

	return e.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *Kind) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)

	return k.Decode(d)
}
