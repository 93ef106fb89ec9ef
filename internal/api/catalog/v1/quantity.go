package catalogv1

import (
	"math"
	"strconv"
	"strings"
)

// Quantity is a cart line quantity. It accepts a JSON number or a numeric
// string. Anything else, fractions included, decodes as 0 so that the line
// is skipped instead of failing the whole cart.
type Quantity int64

func (q *Quantity) UnmarshalJSON(data []byte) error {
	*q = 0

	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*q = Quantity(n)
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	*q = Quantity(int64(f))
	return nil
}
