package vec

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cwbudde/algo-glm/kind"
)

const textSeparator = ", "

// String formats v as its components joined by ", ".
func (v Vector[T, N]) String() string {
	return v.ToString(textSeparator)
}

// ToString joins the formatted components with sep.
func (v Vector[T, N]) ToString(sep string, opts ...FormatOption) string {
	return FormatComponents(v.c[:v.Len()], sep, opts...)
}

// FormatComponents renders xs under opts and joins them with sep.
func FormatComponents[T kind.Scalar](xs []T, sep string, opts ...FormatOption) string {
	cfg := ApplyFormatOptions(opts...)
	tr := kind.Of[T]()

	var p *message.Printer
	if cfg.Locale != language.Und {
		p = message.NewPrinter(cfg.Locale)
	}
	verb := cfg.Verb
	if verb == "" {
		verb = "%v"
	}

	parts := make([]string, len(xs))
	for i, x := range xs {
		switch {
		case p != nil:
			parts[i] = p.Sprintf(verb, x)
		case cfg.Verb != "":
			parts[i] = fmt.Sprintf(verb, x)
		default:
			parts[i] = tr.Format(x)
		}
	}
	return strings.Join(parts, sep)
}

// Parse reads a vector written as exactly N components separated by sep.
// Whitespace around each component is ignored. Errors wrap ErrFormat.
func Parse[T kind.Scalar, N Arity](s, sep string) (Vector[T, N], error) {
	var v Vector[T, N]
	xs, err := ParseComponents[T](s, sep, v.Len())
	if err != nil {
		return Vector[T, N]{}, err
	}
	copy(v.c[:], xs)
	return v, nil
}

// TryParse is Parse without the error. On failure it returns the zero
// vector, never a partially filled one.
func TryParse[T kind.Scalar, N Arity](s, sep string) (Vector[T, N], bool) {
	v, err := Parse[T, N](s, sep)
	if err != nil {
		return Vector[T, N]{}, false
	}
	return v, true
}

// ParseComponents splits s on sep and parses exactly n components.
func ParseComponents[T kind.Scalar](s, sep string, n int) ([]T, error) {
	if sep == "" {
		return nil, fmt.Errorf("%w: empty separator", ErrFormat)
	}
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("%w: %q has %d components, want %d", ErrFormat, s, len(parts), n)
	}
	tr := kind.Of[T]()
	xs := make([]T, n)
	for i, part := range parts {
		x, err := tr.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("%w: component %d: %w", ErrFormat, i, err)
		}
		xs[i] = x
	}
	return xs, nil
}

// MarshalText implements encoding.TextMarshaler using String.
func (v Vector[T, N]) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Components may be
// separated by "," with or without spaces.
func (v *Vector[T, N]) UnmarshalText(text []byte) error {
	parsed, err := Parse[T, N](string(text), ",")
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
