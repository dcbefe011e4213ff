package machine

import (
	"math"

	"github.com/mna/postl/lang/types"
)

// mathUnary is the unary math table: each takes one number, pushes one
// number. Division by zero, log(0) and similar domain edges are left to
// produce NaN/Inf rather than erroring, same as the arithmetic operators.
var mathUnary = map[string]func(float64) float64{
	"ceil":  math.Ceil,
	"floor": math.Floor,
	"round": math.Round,
	"abs":   math.Abs,
	"sqrt":  math.Sqrt,
	"exp":   math.Exp,
	"log":   math.Log,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
}

// mathBinary is the binary math table: each takes two numbers, pushes one.
var mathBinary = map[string]func(a, b float64) float64{
	"min":   math.Min,
	"max":   math.Max,
	"pow":   math.Pow,
	"atan2": math.Atan2,
}

func biMathUnary(fn func(float64) float64) Builtin {
	return func(p *Program) error {
		n, err := popNumber(p, "math")
		if err != nil {
			return err
		}
		p.Push(types.Number(fn(n)))
		return nil
	}
}

func biMathBinary(fn func(a, b float64) float64) Builtin {
	return func(p *Program) error {
		b, err := popNumber(p, "math")
		if err != nil {
			return err
		}
		a, err := popNumber(p, "math")
		if err != nil {
			return err
		}
		p.Push(types.Number(fn(a, b)))
		return nil
	}
}
