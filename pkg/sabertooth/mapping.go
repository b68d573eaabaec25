package sabertooth

// Bounds of the normalized motor value domain used by RatioToValue and
// ValueToRatio.
const (
	RangeMax = 2047
	RangeMin = -2047
)

type number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Range is a (low, high) interval in some numeric domain.
type Range[T number] struct {
	Low, High T
}

// MapRange rescales value from the from interval to the to interval.
// Integer domains truncate toward zero. No clamping is performed; values
// outside from map outside to. from must not be degenerate (Low == High),
// use MapRangeChecked to reject that instead of dividing by zero.
func MapRange[T number](from, to Range[T], value T) T {
	return to.Low + (value-from.Low)*(to.High-to.Low)/(from.High-from.Low)
}

// MapRangeChecked is MapRange with the degenerate-range precondition
// turned into an error.
func MapRangeChecked[T number](from, to Range[T], value T) (T, error) {
	if from.Low == from.High {
		var zero T
		return zero, invalidInputf("degenerate source range (%v, %v)", from.Low, from.High)
	}
	return MapRange(from, to, value), nil
}

// RatioToValue maps a normalized ratio in [-1.0, 1.0] to the symmetric
// integer range [RangeMin, RangeMax]. The result is clamped to the range
// so that 1.0 yields exactly RangeMax despite float rounding.
func RatioToValue(ratio float64) (int, error) {
	if ratio < -1.0 || ratio > 1.0 {
		return 0, invalidInputf("ratio (%v) out of range -1.0~1.0", ratio)
	}
	value := int(ratio * RangeMax)
	if value > RangeMax {
		value = RangeMax
	} else if value < RangeMin {
		value = RangeMin
	}
	return value, nil
}

// ValueToRatio is the inverse scaling of RatioToValue. It does not clamp:
// values outside [RangeMin, RangeMax] yield ratios outside [-1, 1].
func ValueToRatio(value int) float64 {
	return float64(value) / RangeMax
}

// Checksum computes the 7-bit additive checksum the packet protocol
// appends to each frame. It is a frame-integrity check, not a digest.
func Checksum(data []byte) byte {
	var sum uint32
	for _, b := range data {
		sum += uint32(b)
	}
	return byte(sum & 0x7f)
}
