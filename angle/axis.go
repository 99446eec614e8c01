package angle

// Real is the numeric constraint for per-axis arithmetic: any plain integer
// or floating-point type an axis pair may carry.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// AxisElement is a {latitude, longitude} pair of any value type: an Angle
// pair for origins, a uint16 pair for counts and intervals, a float64 pair
// for decimal-degree bounds.
//
// Every operation applies to Lat and Lon independently; the two axes never
// interact with each other.
type AxisElement[T any] struct {
	Lat T
	Lon T
}

// NewAxis builds an axis pair from its two components.
func NewAxis[T any](lat, lon T) AxisElement[T] {
	return AxisElement[T]{Lat: lat, Lon: lon}
}

// Add returns the component-wise sum of two same-typed pairs.
func Add[T Real](a, b AxisElement[T]) AxisElement[T] {
	return AxisElement[T]{Lat: a.Lat + b.Lat, Lon: a.Lon + b.Lon}
}

// Sub returns the component-wise difference of two same-typed pairs.
func Sub[T Real](a, b AxisElement[T]) AxisElement[T] {
	return AxisElement[T]{Lat: a.Lat - b.Lat, Lon: a.Lon - b.Lon}
}

// Mul returns the component-wise product of two same-typed pairs.
func Mul[T Real](a, b AxisElement[T]) AxisElement[T] {
	return AxisElement[T]{Lat: a.Lat * b.Lat, Lon: a.Lon * b.Lon}
}

// Div returns the component-wise quotient of two same-typed pairs.
func Div[T Real](a, b AxisElement[T]) AxisElement[T] {
	return AxisElement[T]{Lat: a.Lat / b.Lat, Lon: a.Lon / b.Lon}
}

// AddScalar broadcasts s to both axes and adds it.
func AddScalar[T Real](a AxisElement[T], s T) AxisElement[T] {
	return AxisElement[T]{Lat: a.Lat + s, Lon: a.Lon + s}
}

// SubScalar broadcasts s to both axes and subtracts it.
func SubScalar[T Real](a AxisElement[T], s T) AxisElement[T] {
	return AxisElement[T]{Lat: a.Lat - s, Lon: a.Lon - s}
}

// MulScalar broadcasts s to both axes and multiplies by it.
func MulScalar[T Real](a AxisElement[T], s T) AxisElement[T] {
	return AxisElement[T]{Lat: a.Lat * s, Lon: a.Lon * s}
}

// DivScalar broadcasts s to both axes and divides by it.
func DivScalar[T Real](a AxisElement[T], s T) AxisElement[T] {
	return AxisElement[T]{Lat: a.Lat / s, Lon: a.Lon / s}
}

// ToFloat64 converts a numeric pair to a float64 pair. Mixed-type axis
// arithmetic goes through this conversion explicitly: convert both operands,
// then use the float64 operations above.
func ToFloat64[T Real](a AxisElement[T]) AxisElement[float64] {
	return AxisElement[float64]{Lat: float64(a.Lat), Lon: float64(a.Lon)}
}

// Degrees converts an Angle pair to its decimal-degree float64 pair.
func Degrees(a AxisElement[Angle]) AxisElement[float64] {
	return AxisElement[float64]{Lat: a.Lat.Degrees(), Lon: a.Lon.Degrees()}
}

// Seconds converts an Angle pair to its signed total arc-seconds pair.
func Seconds(a AxisElement[Angle]) AxisElement[float64] {
	return AxisElement[float64]{Lat: a.Lat.Seconds(), Lon: a.Lon.Seconds()}
}

// AddAngles returns the component-wise sum of two Angle pairs.
// The first axis to overflow on re-normalization reports its error.
func AddAngles(a, b AxisElement[Angle]) (AxisElement[Angle], error) {
	lat, err := a.Lat.Add(b.Lat)
	if err != nil {
		return AxisElement[Angle]{}, err
	}
	lon, err := a.Lon.Add(b.Lon)
	if err != nil {
		return AxisElement[Angle]{}, err
	}

	return AxisElement[Angle]{Lat: lat, Lon: lon}, nil
}

// SubAngles returns the component-wise difference of two Angle pairs.
// The first axis to overflow on re-normalization reports its error.
func SubAngles(a, b AxisElement[Angle]) (AxisElement[Angle], error) {
	lat, err := a.Lat.Sub(b.Lat)
	if err != nil {
		return AxisElement[Angle]{}, err
	}
	lon, err := a.Lon.Sub(b.Lon)
	if err != nil {
		return AxisElement[Angle]{}, err
	}

	return AxisElement[Angle]{Lat: lat, Lon: lon}, nil
}

// EqualAngles reports component-wise equality of two Angle pairs,
// using Angle.Equal on each axis.
func EqualAngles(a, b AxisElement[Angle]) bool {
	return a.Lat.Equal(b.Lat) && a.Lon.Equal(b.Lon)
}
