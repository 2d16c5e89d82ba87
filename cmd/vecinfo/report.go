package main

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-glm/kind"
	"github.com/cwbudde/algo-glm/vec"
)

type row struct {
	op     string
	result string
}

// report parses a and b as vectors of kind k and evaluates every operation
// family k allows.
func report(k kind.Kind, a, b, sep string, opts []vec.FormatOption) ([]row, error) {
	switch n := len(strings.Split(a, sep)); n {
	case 2:
		return reportArity[vec.Two](k, a, b, sep, opts)
	case 3:
		return reportArity[vec.Three](k, a, b, sep, opts)
	case 4:
		return reportArity[vec.Four](k, a, b, sep, opts)
	default:
		return nil, fmt.Errorf("%q has %d components, want 2 to 4", a, n)
	}
}

func reportArity[N vec.Arity](k kind.Kind, a, b, sep string, opts []vec.FormatOption) ([]row, error) {
	switch k {
	case kind.Bool:
		return withParsed[bool, N](a, b, sep, func(x, y vec.Vector[bool, N]) []row { return boolRows(x, y, opts) })
	case kind.Int32:
		return withParsed[int32, N](a, b, sep, func(x, y vec.Vector[int32, N]) []row { return integerRows(x, y, opts) })
	case kind.UInt32:
		return withParsed[uint32, N](a, b, sep, func(x, y vec.Vector[uint32, N]) []row { return integerRows(x, y, opts) })
	case kind.Int64:
		return withParsed[int64, N](a, b, sep, func(x, y vec.Vector[int64, N]) []row { return integerRows(x, y, opts) })
	case kind.UInt64:
		return withParsed[uint64, N](a, b, sep, func(x, y vec.Vector[uint64, N]) []row { return integerRows(x, y, opts) })
	case kind.Float32:
		return withParsed[float32, N](a, b, sep, func(x, y vec.Vector[float32, N]) []row { return floatRows(x, y, opts) })
	default:
		return withParsed[float64, N](a, b, sep, func(x, y vec.Vector[float64, N]) []row { return floatRows(x, y, opts) })
	}
}

func withParsed[T kind.Scalar, N vec.Arity](a, b, sep string, rows func(x, y vec.Vector[T, N]) []row) ([]row, error) {
	x, err := vec.Parse[T, N](a, sep)
	if err != nil {
		return nil, fmt.Errorf("A: %w", err)
	}
	y, err := vec.Parse[T, N](b, sep)
	if err != nil {
		return nil, fmt.Errorf("B: %w", err)
	}
	return rows(x, y), nil
}

func vrow[T kind.Scalar, N vec.Arity](op string, v vec.Vector[T, N], opts []vec.FormatOption) row {
	return row{op, v.ToString(", ", opts...)}
}

func srow[T kind.Scalar](op string, x T, opts []vec.FormatOption) row {
	return row{op, vec.FormatComponents([]T{x}, "", opts...)}
}

func frow(op string, x float64) row {
	return row{op, fmt.Sprintf("%.6g", x)}
}

func boolRows[N vec.Arity](x, y vec.Vector[bool, N], opts []vec.FormatOption) []row {
	return []row{
		vrow("A == B", vec.Equal(x, y), opts),
		vrow("A and B", vec.And(x, y), opts),
		vrow("A or B", vec.Or(x, y), opts),
		vrow("A xor B", vec.Xor(x, y), opts),
		vrow("not A", vec.Not(x), opts),
		{"any(A)", fmt.Sprint(vec.Any(x))},
		{"all(A)", fmt.Sprint(vec.All(x))},
		{"count(A)", fmt.Sprint(vec.Count(x))},
	}
}

func numberRows[T kind.Number, N vec.Arity](x, y vec.Vector[T, N], opts []vec.FormatOption) []row {
	return []row{
		vrow("A + B", vec.Add(x, y), opts),
		vrow("A - B", vec.Sub(x, y), opts),
		vrow("A * B", vec.Mul(x, y), opts),
		vrow("min(A, B)", vec.Min(x, y), opts),
		vrow("max(A, B)", vec.Max(x, y), opts),
		vrow("A < B", vec.LessThan(x, y), opts),
		vrow("A == B", vec.Equal(x, y), opts),
		vrow("abs(A)", vec.Abs(x), opts),
		vrow("sqrt(A)", vec.Sqrt(x), opts),
		srow("dot(A, B)", vec.Dot(x, y), opts),
		srow("sum(A)", vec.Sum(x), opts),
		srow("norm1(A)", vec.Norm1(x), opts),
		srow("normMax(A)", vec.NormMax(x), opts),
		frow("length(A)", vec.Length(x)),
		frow("distance(A, B)", vec.Distance(x, y)),
	}
}

func integerRows[T kind.Integer, N vec.Arity](x, y vec.Vector[T, N], opts []vec.FormatOption) []row {
	rows := numberRows(x, y, opts)
	if vec.Any(vec.EqualScalar(y, 0)) {
		rows = append(rows, row{"A / B", "division by zero"}, row{"A % B", "division by zero"})
	} else {
		rows = append(rows, vrow("A / B", vec.Div(x, y), opts), vrow("A % B", vec.Mod(x, y), opts))
	}
	return append(rows,
		vrow("A & B", vec.BitwiseAnd(x, y), opts),
		vrow("A | B", vec.BitwiseOr(x, y), opts),
		vrow("A ^ B", vec.Xor(x, y), opts),
		vrow("^A", vec.BitwiseNot(x), opts),
		vrow("A << B", vec.LeftShift(x, y), opts),
		vrow("A >> B", vec.RightShift(x, y), opts),
	)
}

func floatRows[T kind.Float, N vec.Arity](x, y vec.Vector[T, N], opts []vec.FormatOption) []row {
	rows := numberRows(x, y, opts)
	rows = append(rows,
		vrow("A / B", vec.Div(x, y), opts),
		vrow("mix(A, B, 0.5)", vec.MixScalar(x, y, 0.5), opts),
		vrow("floor(A)", vec.Floor(x), opts),
		vrow("fract(A)", vec.Fract(x), opts),
		vrow("normalize(A)", vec.Normalize(x), opts),
		vrow("reflect(A, B)", vec.Reflect(x, y), opts),
	)
	if x3, ok := any(x).(vec.Vector[T, vec.Three]); ok {
		y3 := any(y).(vec.Vector[T, vec.Three])
		rows = append(rows, vrow("cross(A, B)", vec.Cross(x3, y3), opts))
	}
	return rows
}
