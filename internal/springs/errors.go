package springs

import "errors"

var (
	// ErrMalformedRecord indicates a row character outside the ".#?" alphabet.
	ErrMalformedRecord = errors.New("springs: malformed record")
	// ErrMalformedLengths indicates a missing group list or a segment that is not a positive integer.
	ErrMalformedLengths = errors.New("springs: malformed group lengths")
	// ErrTooManyUnknowns indicates a record too large for exhaustive enumeration.
	ErrTooManyUnknowns = errors.New("springs: too many unknown springs to enumerate")
)
