package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidHex is returned for colour strings that are not exactly "#RRGGBB".
	ErrInvalidHex = errors.New("invalid hex color")
	// ErrInvalidTuple is returned for numeric colours that are not [r,g,b,a].
	ErrInvalidTuple = errors.New("invalid color tuple")
)

// RGBA is a colour with 8-bit red, green and blue channels and a
// floating-point alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// ParseHex parses a "#RRGGBB" string. Alpha is set to 1.
func ParseHex(s string) (RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGBA{}, fmt.Errorf("%w: %q must be 7 characters like #rrggbb", ErrInvalidHex, s)
	}
	// colorful.Hex stops scanning at the first non-hex digit without failing.
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return RGBA{}, fmt.Errorf("%w: %q has non-hex digit %q", ErrInvalidHex, s, s[i])
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: 1}, nil
}

func isHexDigit(b byte) bool {
	return '0' <= b && b <= '9' || 'a' <= b && b <= 'f' || 'A' <= b && b <= 'F'
}

// FromTuple builds a colour from an [r, g, b, a] tuple.
func FromTuple(v []float64) (RGBA, error) {
	if len(v) != 4 {
		return RGBA{}, fmt.Errorf("%w: want 4 elements, got %d", ErrInvalidTuple, len(v))
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n := v[i]
		if n != math.Trunc(n) || n < 0 || n > 255 {
			return RGBA{}, fmt.Errorf("%w: channel %d value %v is not an integer in 0..255", ErrInvalidTuple, i, n)
		}
		ch[i] = uint8(n)
	}
	if math.IsNaN(v[3]) || math.IsInf(v[3], 0) {
		return RGBA{}, fmt.Errorf("%w: alpha %v is not finite", ErrInvalidTuple, v[3])
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: v[3]}, nil
}

// Hex renders the colour as "#rrggbb". Alpha is dropped.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Functional renders the colour as "rgba(r,g,b,a)".
func (c RGBA) Functional() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," + strconv.FormatFloat(c.A, 'f', -1, 64) + ")"
}

func (c RGBA) String() string {
	if c.A == 1 {
		return c.Hex()
	}
	return c.Functional()
}

func (c RGBA) tuple() []float64 {
	return []float64{float64(c.R), float64(c.G), float64(c.B), c.A}
}

// UnmarshalJSON accepts either a hex string or an [r,g,b,a] array.
func (c *RGBA) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseHex(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: expected hex string or [r,g,b,a], got %s", ErrInvalidTuple, data)
	}
	parsed, err := FromTuple(v)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON writes opaque colours as hex and the rest as a tuple.
func (c RGBA) MarshalJSON() ([]byte, error) {
	if c.A == 1 {
		return json.Marshal(c.Hex())
	}
	return json.Marshal(c.tuple())
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML catalogs.
func (c *RGBA) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseHex(node.Value)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var v []float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrInvalidTuple, node.Line, err)
		}
		parsed, err := FromTuple(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	default:
		return fmt.Errorf("%w: line %d: expected hex string or [r,g,b,a]", ErrInvalidTuple, node.Line)
	}
}
