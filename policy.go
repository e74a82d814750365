package filterargv

import (
	"fmt"

	"github.com/cardinalby/go-filter-argv/cmdargs"
)

// Keeps reports whether an argument of the given kind passes the filter.
// `opts` are expected to be normalized (see Options.Normalize).
func (opts Options) Keeps(kind cmdargs.Kind) (bool, error) {
	switch kind {
	case cmdargs.KindLonelyDashes:
		return opts.KeepLonelyDashes, nil
	case cmdargs.KindAssignmentFlag:
		return opts.Assignments != AssignmentsNone && opts.Assignments != AssignmentsNoFlag, nil
	case cmdargs.KindAssignmentNormal:
		return opts.Assignments != AssignmentsNone, nil
	case cmdargs.KindFlag:
		return opts.Flags, nil
	case cmdargs.KindNormal:
		return opts.StandardArgs, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
