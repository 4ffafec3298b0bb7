package conv

import (
	"fmt"
	"math"
)

// ByteSize returns count*width, reporting an error when the product does not
// fit in int. Both arguments must be non-negative.
func ByteSize(count, width int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("invalid element count: %d", count)
	}
	if width <= 0 {
		return 0, fmt.Errorf("invalid element width: %d", width)
	}
	if count > math.MaxInt/width {
		return 0, fmt.Errorf("byte size overflow: %d elements of width %d", count, width)
	}
	return count * width, nil
}
