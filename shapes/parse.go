package shapes

import (
	"strconv"
	"strings"

	"github.com/gomlx/lazytensors/dtypes"
	"github.com/pkg/errors"
)

// Parse converts the string representation of a shape, as produced by
// Shape.String, back to a Shape. So "Float[2,3]" parses to
// Make(dtypes.Float, 2, 3), and "Long[]" to a scalar Long shape.
//
// The dtype name is resolved with dtypes.MapOfNames, so the Go-style aliases
// and lower-case names ("float32[2,3]") are also accepted.
//
// Like Make, it performs no validation of the parsed dimension values.
func Parse(str string) (Shape, error) {
	open := strings.IndexByte(str, '[')
	if open < 0 || !strings.HasSuffix(str, "]") {
		return Shape{}, errors.Errorf("cannot parse %q as a shape, expected \"<dtype>[<dim0>,<dim1>,...]\"", str)
	}
	dtype, found := dtypes.MapOfNames[str[:open]]
	if !found {
		return Shape{}, errors.Errorf("cannot parse %q as a shape: unknown dtype %q", str, str[:open])
	}
	dimsStr := str[open+1 : len(str)-1]
	if dimsStr == "" {
		return Make(dtype), nil
	}
	parts := strings.Split(dimsStr, ",")
	dimensions := make([]int, len(parts))
	for ii, part := range parts {
		dim, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Shape{}, errors.Wrapf(err, "cannot parse dimension %q of shape %q", part, str)
		}
		dimensions[ii] = dim
	}
	return Make(dtype, dimensions...), nil
}
