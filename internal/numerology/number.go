package numerology

import (
	"fmt"
	"strconv"

	"github.com/soulatlas/blueprint/internal/shared/errs"
)

// Number is a numerology value: either a single digit 1-9 or one of the
// master numbers 11, 22, 33. The two cases are tagged so they can never be
// confused in comparisons or formatting.
type Number struct {
	value  int
	master bool
}

// Digit creates a single-digit number.
func Digit(v int) Number {
	return Number{value: v}
}

// Master creates a master number.
func Master(v int) Number {
	return Number{value: v, master: true}
}

// Int returns the numeric value.
func (n Number) Int() int {
	return n.value
}

// IsMaster reports whether the number is a master number.
func (n Number) IsMaster() bool {
	return n.master
}

// String renders the number, marking masters so "11" never reads as "2".
func (n Number) String() string {
	if n.master {
		return fmt.Sprintf("%d (master)", n.value)
	}
	return strconv.Itoa(n.value)
}

// MarshalJSON encodes the tagged representation.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"value":%d,"master":%t}`, n.value, n.master)), nil
}

func isMasterValue(v int) bool {
	return v == 11 || v == 22 || v == 33
}

// maxReduceSteps bounds the reduction loop. Any int reaches a single digit
// in far fewer steps; exceeding this means a broken invariant, not bad input.
const maxReduceSteps = 32

// Reduce collapses a non-negative total to a Number. Master numbers stop the
// reduction at every intermediate sum, not only at the final one, so 29
// reduces to 11 rather than 2.
func Reduce(v int) (Number, error) {
	if v < 0 {
		return Number{}, errs.Invariant("cannot reduce negative value %d", v)
	}
	for step := 0; step < maxReduceSteps; step++ {
		if isMasterValue(v) {
			return Master(v), nil
		}
		if v <= 9 {
			return Digit(v), nil
		}
		v = digitSum(v)
	}
	return Number{}, errs.Invariant("reduction did not terminate for %d", v)
}

func digitSum(v int) int {
	sum := 0
	for v > 0 {
		sum += v % 10
		v /= 10
	}
	return sum
}
