package machine

import (
	"math"

	"github.com/mna/postl/lang/types"
)

// biRoll implements "roll": pop a signed integer amount and rotate the
// entire remaining stack by it, modulo stack size. A stack of size 0 or 1
// after the pop is a no-op.
func biRoll(p *Program) error {
	amount, err := popInt(p, "roll")
	if err != nil {
		return err
	}
	rotateWindow(p.Stack, amount)
	return nil
}

// biRotate implements "rotate": pop a cycle length L, then a signed amount,
// and rotate only the top L items of what remains by that amount. L must
// be an integer within [0, remaining stack size]; anything else is a
// "rotate length out of range" error.
//
// See DESIGN.md for a worked-example discrepancy this implementation
// deliberately does not special-case: popping two real operands (L then
// amount) necessarily shrinks a three-item stack to one item, so the
// documented two-pop arity cannot produce a three-item rotation result
// from only three pushed values. This follows the documented arity rather
// than inventing an alternate one to force that result.
func biRotate(p *Program) error {
	length, err := popInt(p, "rotate")
	if err != nil {
		return err
	}
	amount, err := popInt(p, "rotate")
	if err != nil {
		return err
	}
	if length < 0 || length > len(p.Stack) {
		return &valueError{Msg: "rotate length out of range"}
	}
	window := p.Stack[len(p.Stack)-length:]
	rotateWindow(window, amount)
	return nil
}

func popInt(p *Program, what string) (int, error) {
	f, err := popNumber(p, what)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, &valueError{Msg: what + " requires an integral argument"}
	}
	return int(f), nil
}

// rotateWindow rotates s in place: a positive amount moves the top toward
// the bottom (the top amount%n items migrate to the bottom, in order);
// a negative amount moves elements from the bottom to the top. s is
// indexed bottom-to-top, as the operand stack always is.
func rotateWindow(s []types.Value, amount int) {
	n := len(s)
	if n < 2 {
		return
	}
	k := ((amount % n) + n) % n
	if k == 0 {
		return
	}
	// new[i] = old[(i-k) mod n]: the element k positions below the top
	// wraps around to become the new top.
	rotated := make([]types.Value, n)
	for i := 0; i < n; i++ {
		rotated[i] = s[((i-k)%n+n)%n]
	}
	copy(s, rotated)
}
