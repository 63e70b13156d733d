package opener

import "errors"

var ErrNotHandled = errors.New("resource is not inside a registered repository")
