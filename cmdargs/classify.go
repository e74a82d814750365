package cmdargs

// Classify returns the Kind of arg. The shape tests are applied in order and the first match wins:
// lonely dashes, assignment flag, any other assignment, flag. Everything else is KindNormal.
func Classify(arg string) Kind {
	switch {
	case IsStandaloneDashes(arg):
		return KindLonelyDashes
	case IsAssignmentFlagArg(arg):
		return KindAssignmentFlag
	case IsAnyAssignmentArg(arg):
		// assignment flags are already matched above
		return KindAssignmentNormal
	case StartsWithDashesThenName(arg):
		return KindFlag
	default:
		return KindNormal
	}
}
