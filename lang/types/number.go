package types

import "fmt"

// Number is postl's sole numeric type, an IEEE-754 double.
type Number float64

var _ Value = Number(0)

func (n Number) String() string { return fmt.Sprintf("%g", float64(n)) }
func (Number) Type() string     { return "number" }
func (n Number) Truthy() bool   { return n != 0 }
func (n Number) Clone() Value   { return n }
