package dataset

import "errors"

var ErrMalformedDocument = errors.New("malformed dataset document")
