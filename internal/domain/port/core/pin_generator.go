package core

// PinGenerator produces random numeric withdrawal PIN codes.
// Implementations must return a string of exactly length digits.
type PinGenerator interface {
	Generate(length int) (string, error)
}
