package types

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Temporal values are stored as fixed-length msgpack arrays of their fields
// so the storage serializer does not need to parse strings on the read path.

//nolint:gochecknoglobals
var (
	_ msgpack.CustomEncoder = Date{}
	_ msgpack.CustomDecoder = (*Date)(nil)
	_ msgpack.CustomEncoder = Time{}
	_ msgpack.CustomDecoder = (*Time)(nil)
	_ msgpack.CustomEncoder = DateTime{}
	_ msgpack.CustomDecoder = (*DateTime)(nil)
)

const (
	dateFields     = 3
	timeFields     = 4
	dateTimeFields = dateFields + timeFields
)

// decodeArrayLen decodes an array header and checks that it holds want
// elements.
func decodeArrayLen(dec *msgpack.Decoder, want int, kind string) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != want {
		return fmt.Errorf("%w: %v encoding has %d fields, expected %d", ErrType, kind, n, want)
	}
	return nil
}

func encodeDate(enc *msgpack.Encoder, year int16, month, day uint8) error {
	if err := enc.EncodeInt16(year); err != nil {
		return err
	}
	if err := enc.EncodeUint8(month); err != nil {
		return err
	}
	return enc.EncodeUint8(day)
}

func decodeDate(dec *msgpack.Decoder) (Date, error) {
	var d Date
	var err error
	if d.Year, err = dec.DecodeInt16(); err != nil {
		return d, err
	}
	if d.Month, err = dec.DecodeUint8(); err != nil {
		return d, err
	}
	d.Day, err = dec.DecodeUint8()
	return d, err
}

func encodeTime(enc *msgpack.Encoder, ts Time) error {
	if err := enc.EncodeUint8(ts.Hour); err != nil {
		return err
	}
	if err := enc.EncodeUint8(ts.Minute); err != nil {
		return err
	}
	if err := enc.EncodeUint8(ts.Second); err != nil {
		return err
	}
	return enc.EncodeUint32(ts.Microsecond)
}

func decodeTime(dec *msgpack.Decoder) (Time, error) {
	var ts Time
	var err error
	if ts.Hour, err = dec.DecodeUint8(); err != nil {
		return ts, err
	}
	if ts.Minute, err = dec.DecodeUint8(); err != nil {
		return ts, err
	}
	if ts.Second, err = dec.DecodeUint8(); err != nil {
		return ts, err
	}
	ts.Microsecond, err = dec.DecodeUint32()
	return ts, err
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (d Date) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(dateFields); err != nil {
		return err
	}
	return encodeDate(enc, d.Year, d.Month, d.Day)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (d *Date) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayLen(dec, dateFields, "date"); err != nil {
		return err
	}
	val, err := decodeDate(dec)
	if err != nil {
		return err
	}
	*d = val
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (ts Time) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(timeFields); err != nil {
		return err
	}
	return encodeTime(enc, ts)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (ts *Time) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayLen(dec, timeFields, "time"); err != nil {
		return err
	}
	val, err := decodeTime(dec)
	if err != nil {
		return err
	}
	*ts = val
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (dt DateTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(dateTimeFields); err != nil {
		return err
	}
	if err := encodeDate(enc, dt.Year, dt.Month, dt.Day); err != nil {
		return err
	}
	return encodeTime(enc, dt.Time())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (dt *DateTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayLen(dec, dateTimeFields, "datetime"); err != nil {
		return err
	}
	d, err := decodeDate(dec)
	if err != nil {
		return err
	}
	ts, err := decodeTime(dec)
	if err != nil {
		return err
	}
	*dt = Combine(d, ts)
	return nil
}
