package layered

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/avdva/layered/internal/mathutil"
	"github.com/avdva/layered/internal/strutil"
)

// FromString parses a string into a value.
// Unparseable strings produce zero, see Parse for the accepted syntax.
func FromString(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		diagnose("unparseable string coerced to zero", "input", s, "error", err)
		return zero
	}
	return d
}

// MustParse parses a string into a value, and panics on error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse parses a string into a value.
// It accepts, case-insensitively and surrounded by optional spaces and double quotes:
//   - an optional sign,
//   - "inf" or "infinity",
//   - a float, like "123.45",
//   - scientific notation, like "1.5e1000", with no limits on the exponent,
//   - hash notation, like "e3#12.5", as produced by String for layers 2 and above.
// Returned errors belong to the Error class.
func Parse(s string) (Decimal, error) {
	prepared, offset, neg := strutil.Prepare(s)
	if len(prepared) == 0 {
		return zero, Error.New("empty input")
	}
	d, err := parseUnsigned(prepared)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return zero, Error.Wrap(fmt.Errorf("parsing failed: %w", strutil.AddOffset(err, offset+1)))
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

func parseUnsigned(s string) (Decimal, error) {
	switch s {
	case "inf", "infinity":
		return Infinity, nil
	}
	if layer, mag, pos, ok := strutil.SplitHash(s); ok {
		return parseHash(layer, mag, pos)
	}
	if mant, exp, pos, ok := strutil.SplitExp(s); ok {
		return parseScientific(s, mant, exp, pos)
	}
	f, log, err := parseMag(s)
	switch {
	case err != nil:
		return zero, strutil.NewPosError(err.Error(), 0)
	case log:
		return normalize(false, 1, f), nil
	}
	return FromFloat64(f), nil
}

func parseScientific(s, mant, exp string, pos int) (Decimal, error) {
	m, log, err := parseMag(mant)
	if err != nil {
		return zero, strutil.NewPosError("bad mantissa: "+err.Error(), 0)
	}
	e, err := strconv.ParseFloat(exp, 64)
	if err != nil || math.IsInf(e, 0) || math.IsNaN(e) {
		return zero, strutil.NewPosError(fmt.Sprintf("bad exponent %q", exp), pos+1)
	}
	if m == 0 && !log {
		return zero, nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil { // exact for everything float64 can hold.
		return FromFloat64(v), nil
	}
	if !log {
		if v := m * math.Pow(10, e); !math.IsInf(v, 0) {
			return FromFloat64(v), nil
		}
		m = mathutil.Log10(m)
	}
	// m * 10^e = 10^(log10(m) + e)
	return normalize(false, 1, m+e), nil
}

func parseHash(layer, mag string, pos int) (Decimal, error) {
	l, err := strconv.Atoi(layer)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(layer, "-") {
		l, err = InfLayer, nil
	}
	if err != nil || l < 0 {
		return zero, strutil.NewPosError(fmt.Sprintf("bad layer %q", layer), 1)
	}
	m, err := strconv.ParseFloat(mag, 64)
	if err != nil || m < 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return zero, strutil.NewPosError(fmt.Sprintf("bad magnitude %q", mag), pos+1)
	}
	// layers beyond InfLayer saturate to Infinity.
	return normalize(false, l, m), nil
}

// parseMag parses a non-negative decimal number.
// If the number exceeds float64, it returns its decimal logarithm and log == true.
func parseMag(s string) (v float64, log bool, err error) {
	if len(s) == 0 {
		return 0, false, errors.New("empty number")
	}
	if c := s[0]; c != '.' && (c < '0' || c > '9') {
		return 0, false, fmt.Errorf("unexpected symbol %q", c)
	}
	v, err = strconv.ParseFloat(s, 64)
	if err == nil {
		return v, false, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		if math.IsInf(v, 0) {
			if l, ok := log10Digits(s); ok {
				return l, true, nil
			}
		}
		return 0, false, nil // underflow
	}
	return 0, false, fmt.Errorf("bad number %q", s)
}

// log10Digits calculates log10 of a decimal number too large for float64.
func log10Digits(s string) (float64, bool) {
	intPart := s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
	}
	intPart = strings.TrimLeft(intPart, "0")
	if len(intPart) == 0 {
		return 0, false
	}
	head := intPart
	if len(head) > 17 {
		head = head[:17]
	}
	f, err := strconv.ParseFloat(head, 64)
	if err != nil {
		return 0, false
	}
	return mathutil.Log10(f) + float64(len(intPart)-len(head)), true
}

// String returns a string representation of the value:
//   - layer 0: "123.45" below 1000, "1.23e5" otherwise,
//   - layer 1: "1e<exponent>",
//   - layer 2 and above: hash notation "e<layer>#<magnitude>".
func (d Decimal) String() string {
	switch {
	case d.IsZero():
		return "0"
	case d.IsInf():
		return d.signPrefix() + "Infinity"
	case d.layer == 0 && d.mag < 1000:
		return strconv.FormatFloat(d.signedMag(), 'f', 2, 64)
	case d.layer == 0:
		return formatExp(d.signedMag(), 2)
	case d.layer == 1:
		return d.signPrefix() + "1e" + strconv.FormatFloat(math.Round(d.mag), 'f', 0, 64)
	}
	return d.signPrefix() + "e" + strconv.Itoa(d.layer) + "#" + strconv.FormatFloat(d.mag, 'f', 2, 64)
}

// StringFixed returns d with prec digits after the decimal point.
// Values at layer 1 and above are formatted with StringExp.
func (d Decimal) StringFixed(prec int) string {
	if d.layer > 0 {
		return d.StringExp(prec)
	}
	return strconv.FormatFloat(d.signedMag(), 'f', prec, 64)
}

// StringExp returns d in scientific notation with prec digits in the mantissa,
// like "1.50e1000". Values at layer 2 and above are returned in hash notation.
func (d Decimal) StringExp(prec int) string {
	switch {
	case d.layer == 0:
		return formatExp(d.signedMag(), prec)
	case d.layer > 1:
		return d.String()
	}
	m, e := mathutil.SplitPow10(d.mag)
	ms := strconv.FormatFloat(m, 'f', prec, 64)
	if rounded, _ := strconv.ParseFloat(ms, 64); rounded >= 10 {
		ms = strconv.FormatFloat(1, 'f', prec, 64)
		e++
	}
	return d.signPrefix() + ms + "e" + strconv.FormatFloat(e, 'f', 0, 64)
}

func (d Decimal) signPrefix() string {
	if d.neg {
		return "-"
	}
	return ""
}

// formatExp formats f like strconv does with the 'e' format, but without
// the plus sign and leading zeros in the exponent.
func formatExp(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'e', prec, 64)
	i := strings.IndexByte(s, 'e')
	e, _ := strconv.Atoi(s[i+1:])
	return s[:i+1] + strconv.Itoa(e)
}

// Format implements fmt.Formatter.
//   %v, %s: String()
//   %#v: GoString()
//   %f: StringFixed(), 2 digits by default
//   %e: StringExp(), 2 digits by default
func (d Decimal) Format(f fmt.State, verb rune) {
	prec, ok := f.Precision()
	if !ok {
		prec = 2
	}
	switch verb {
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, d.GoString())
			return
		}
		io.WriteString(f, d.String())
	case 's':
		io.WriteString(f, d.String())
	case 'f', 'F':
		io.WriteString(f, d.StringFixed(prec))
	case 'e', 'E':
		io.WriteString(f, d.StringExp(prec))
	default:
		fmt.Fprintf(f, "%%!%c(layered.Decimal=%s)", verb, d.String())
	}
}
