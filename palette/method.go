package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmuldo/hueorder/deltae"
)

// ErrUnknownMethod is returned by ParseMethod for unrecognized names.
var ErrUnknownMethod = errors.New("unknown sort method")

// Method selects how SortColors orders a palette.
type Method int

const (
	// Luminance sorts by ascending luma.
	Luminance Method = iota
	// Random shuffles.
	Random
	// Reversion reverses the input order.
	Reversion
	// CIE76, CIE94 and CIEDE2000 walk the palette greedily, always stepping
	// to the nearest remaining color under that difference formula.
	CIE76
	CIE94
	CIEDE2000
	numMethods
)

// DefaultMethod is used in place of any out-of-range Method.
const DefaultMethod = CIEDE2000

var methodNames = [numMethods]string{"luminance", "random", "reversion", "CIE76", "CIE94", "CIEDE2000"}

// Methods lists all methods in index order.
func Methods() []Method {
	ans := make([]Method, numMethods)
	for i := range ans {
		ans[i] = Method(i)
	}
	return ans
}

func (m Method) Valid() bool { return m >= 0 && m < numMethods }

func (m Method) String() string {
	if !m.Valid() {
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
	return methodNames[m]
}

// DiffFunc returns the difference formula of a nearest-neighbor method and
// nil for the others.
func (m Method) DiffFunc() deltae.Func {
	switch m {
	case CIE76:
		return deltae.CIE76
	case CIE94:
		return deltae.CIE94
	case CIEDE2000:
		return deltae.CIEDE2000
	}
	return nil
}

// ParseMethod resolves a method by case-insensitive name or by its index
// in Methods().
func ParseMethod(name string) (Method, error) {
	key := strings.TrimSpace(name)
	if idx, err := strconv.Atoi(key); err == nil {
		if m := Method(idx); m.Valid() {
			return m, nil
		}
		return DefaultMethod, fmt.Errorf("%w: index %d", ErrUnknownMethod, idx)
	}
	for i, n := range methodNames {
		if strings.EqualFold(n, key) {
			return Method(i), nil
		}
	}
	return DefaultMethod, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}
