package logout

import "errors"

var ErrRequestNil = errors.New("request is required")
