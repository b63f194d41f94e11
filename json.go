package layered

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeObject
)

const (
	// JSONModeObject marshals values as objects, like `{"sign":1,"layer":1,"magnitude":1000}`.
	JSONModeObject = iota
	// JSONModeString marshals values as lossless strings, like `"8"` or `"e1#1000"`, see MarshalText.
	JSONModeString
)

// Raw is the persisted form of a value.
type Raw struct {
	Sign      int     `json:"sign"`
	Layer     int     `json:"layer"`
	Magnitude float64 `json:"magnitude"`
}

// Raw returns the fields of d. Zero has the sign 1.
func (d Decimal) Raw() Raw {
	return Raw{Sign: d.rawSign(), Layer: d.layer, Magnitude: d.mag}
}

// FromRaw returns a value for the given fields.
// The fields are normalized, so corrupt data never produces an invalid value.
func FromRaw(r Raw) Decimal {
	d := normalize(r.Sign < 0, r.Layer, r.Magnitude)
	if Diagnostics != nil {
		if err := r.Validate(); err != nil {
			diagnose("non-canonical raw value normalized", "raw", r, "result", d, "error", err)
		}
	}
	return d
}

// Validate checks that r holds a canonical value, the way Raw produces it.
// Returned errors belong to the Error class.
func (r Raw) Validate() error {
	switch {
	case r.Sign != 1 && r.Sign != -1:
		return Error.New("bad sign %d", r.Sign)
	case r.Layer < 0:
		return Error.New("negative layer %d", r.Layer)
	case math.IsNaN(r.Magnitude) || math.IsInf(r.Magnitude, 0):
		return Error.New("non-finite magnitude")
	case r.Magnitude < 0:
		return Error.New("negative magnitude %v", r.Magnitude)
	}
	if n := normalize(r.Sign < 0, r.Layer, r.Magnitude).Raw(); n != r {
		return Error.New("not normalized: {%d, %d, %v} is stored as {%d, %d, %v}",
			r.Sign, r.Layer, r.Magnitude, n.Sign, n.Layer, n.Magnitude)
	}
	return nil
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (d Decimal) MarshalJSON() ([]byte, error) {
	if JSONMode == JSONModeString {
		text, _ := d.MarshalText()
		return json.Marshal(string(text))
	}
	return json.Marshal(d.Raw())
}

// UnmarshalJSON unmarshals an object, a string, or a number into a value.
// Missing object fields default to sign 1, layer 0, magnitude 0; the legacy "mag" key is accepted too.
// Only malformed json produces an error, any other input is coerced like FromString does.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Error.New("empty json")
	}
	switch data[0] {
	case 'n':
		if string(data) == "null" {
			return nil
		}
	case '{':
		var obj struct {
			Sign      *float64 `json:"sign"`
			Layer     *float64 `json:"layer"`
			Magnitude *float64 `json:"magnitude"`
			Mag       *float64 `json:"mag"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return Error.Wrap(err)
		}
		r := Raw{Sign: 1}
		if obj.Sign != nil && *obj.Sign != 0 {
			r.Sign = int(*obj.Sign)
		}
		if obj.Layer != nil {
			r.Layer = int(math.Max(math.Min(*obj.Layer, InfLayer), -1))
		}
		switch {
		case obj.Magnitude != nil:
			r.Magnitude = *obj.Magnitude
		case obj.Mag != nil:
			r.Magnitude = *obj.Mag
		}
		*d = FromRaw(r)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Error.Wrap(err)
		}
		*d = FromString(s)
		return nil
	}
	if !json.Valid(data) {
		return Error.New("invalid json %q", data)
	}
	*d = FromString(string(data))
	return nil
}

// MarshalText returns a lossless text form of d, which Parse reads back to the same value.
// Values at layer 0 are formatted as floats, like "8" or "1.5e+300",
// others use hash notation with the full magnitude, like "e1#1000.5".
func (d Decimal) MarshalText() ([]byte, error) {
	switch {
	case d.IsInf(), d.IsZero():
		return []byte(d.String()), nil
	case d.layer == 0:
		return []byte(strconv.FormatFloat(d.signedMag(), 'g', -1, 64)), nil
	}
	return []byte(d.signPrefix() + "e" + strconv.Itoa(d.layer) + "#" + strconv.FormatFloat(d.mag, 'g', -1, 64)), nil
}

// UnmarshalText parses text into d, see FromString.
func (d *Decimal) UnmarshalText(text []byte) error {
	*d = FromString(string(text))
	return nil
}
