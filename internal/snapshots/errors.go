package snapshots

import "errors"

var ErrNoSnapshots = errors.New("no snapshots recorded")
