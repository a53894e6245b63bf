package dirichlet

// roundBack converts a solved float64 value back to the component scalar
// type C for write-back, per the rounding rule of §4.5: floating-point
// components are simply cast; unsigned integer components round half up
// (round(x+0.5), truncated); signed integer components round half away
// from zero (x<0 => x-0.5, else x+0.5, truncated). Go has no "const
// pointer" to distinguish read-only callers, so, unlike the template
// specialisation the original draws between const and non-const C,
// write-back here always happens; a caller that wants to inspect the
// solution without mutating its image passes a scratch copy of the
// component's backing slice.
func roundBack[C Numeric](x float64) C {
	var zero C
	switch any(zero).(type) {
	case float32, float64:
		return C(x)
	}
	if C(0)-C(1) < 0 { // signed integer
		if x < 0 {
			return C(x - 0.5)
		}
		return C(x + 0.5)
	}
	// unsigned integer
	return C(x + 0.5)
}
