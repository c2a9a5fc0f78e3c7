package factories

import "errors"

// ErrInvalidDimensions is returned by Brick when any of m, n, p is not
// positive.
var ErrInvalidDimensions = errors.New("factories: brick dimensions must be positive")
