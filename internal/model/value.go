package model

// Value is either Text or Number. The unexported marker method keeps the
// set of variants closed to this package.
type Value interface {
	isValue()
}

// Text is the string variant of Value.
type Text string

// Number is the numeric variant of Value.
type Number float64

func (Text) isValue()   {}
func (Number) isValue() {}

// ProcessValue returns the byte length of a Text and twice a Number. v must
// not be nil; a nil Value panics.
func ProcessValue(v Value) float64 {
	switch v := v.(type) {
	case Text:
		return float64(len(v))
	case Number:
		return float64(v) * 2
	case nil:
		panic("model: ProcessValue called with a nil Value")
	}
	panic("model: unreachable Value variant")
}
