package bigint

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -123456
//	%q:        "-123456"
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is interpreted as the minimum number of digits, as in [big.Int.Format].
// A precision of 0 prints nothing for the value 0.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
// [big.Int.Format]: https://pkg.go.dev/math/big#Int.Format
func (d Int) Format(state fmt.State, verb rune) {
	// Digits
	digs := d.mag().appendDecimal(nil)

	// Minimum number of digits
	lzeroes := 0
	prec, hasprec := state.Precision()
	if hasprec {
		switch {
		case len(digs) < prec:
			lzeroes = prec - len(digs)
		case prec == 0 && d.IsZero():
			digs = digs[:0]
		}
	}

	// Arithmetic sign
	rsign := 0
	if d.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + lzeroes + len(digs) + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && !hasprec:
			lzeroes += w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	buf = appendRepeat(buf, ' ', lspaces)
	buf = appendRepeat(buf, '"', lquote)
	if rsign > 0 {
		switch {
		case d.IsNeg():
			buf = append(buf, '-')
		case state.Flag('+'):
			buf = append(buf, '+')
		default:
			buf = append(buf, ' ')
		}
	}
	buf = appendRepeat(buf, '0', lzeroes)
	buf = append(buf, digs...)
	buf = appendRepeat(buf, '"', tquote)
	buf = appendRepeat(buf, ' ', tspaces)

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bigint.Int="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

func appendRepeat(buf []byte, b byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, b)
	}
	return buf
}

// Scan implements [fmt.Scanner] interface.
// It skips leading white space, reads one white-space-delimited token and
// converts it using [Parse].
// The following verbs are available: %d, %s, %v.
// If there is no token left, Scan returns [io.EOF], which the fmt scanning
// functions report as [io.ErrUnexpectedEOF].
//
// [fmt.Scanner]: https://pkg.go.dev/fmt#Scanner
func (d *Int) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'd', 's', 'v':
	default:
		return errors.Newf("bigint: invalid verb %%%c for %T", verb, Int{})
	}
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return io.EOF
	}
	e, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*d = e
	return nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Int) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Int) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// It accepts a JSON number or a JSON string holding an integer.
// The JSON null value is a no-op.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Int) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	e, err := Parse(string(data))
	if err != nil {
		return errors.Wrapf(err, "unmarshaling %T", Int{})
	}
	*d = e
	return nil
}

// MarshalJSON implements [json.Marshaler] interface.
// The integer is encoded as a JSON number.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Int) MarshalJSON() ([]byte, error) {
	return d.MarshalText()
}
