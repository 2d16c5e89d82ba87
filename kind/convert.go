package kind

// Convert is the explicit conversion between any two kinds.
//
//   - bool to a number yields One or Zero;
//   - a float to any kind goes through the target's Truncate rule
//     (integers truncate toward zero and saturate, bool tests for nonzero);
//   - an integer to another integer keeps the low bits, as a Go conversion
//     does, so cross-signedness reinterprets the two's complement pattern;
//   - an integer to bool tests for nonzero.
func Convert[To, From Scalar](x From) To {
	switch v := any(x).(type) {
	case bool:
		to := Of[To]()
		if v {
			return to.One()
		}
		return to.Zero()
	case float32:
		return Of[To]().Truncate(float64(v))
	case float64:
		return Of[To]().Truncate(v)
	case int32:
		return fromInt64[To](int64(v))
	case int64:
		return fromInt64[To](v)
	case uint32:
		return fromUint64[To](uint64(v))
	case uint64:
		return fromUint64[To](v)
	}
	panic("kind: unsupported conversion")
}

func fromInt64[To Scalar](i int64) To {
	var zero To
	var r any
	switch any(zero).(type) {
	case bool:
		r = i != 0
	case int32:
		r = int32(i)
	case uint32:
		r = uint32(i)
	case int64:
		r = i
	case uint64:
		r = uint64(i)
	case float32:
		r = float32(i)
	case float64:
		r = float64(i)
	}
	return r.(To)
}

func fromUint64[To Scalar](u uint64) To {
	var zero To
	var r any
	switch any(zero).(type) {
	case bool:
		r = u != 0
	case int32:
		r = int32(u)
	case uint32:
		r = uint32(u)
	case int64:
		r = int64(u)
	case uint64:
		r = u
	case float32:
		r = float32(u)
	case float64:
		r = float64(u)
	}
	return r.(To)
}
