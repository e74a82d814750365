package cmdargs

import "fmt"

// Kind is the shape category of a single command-line argument.
// Every argument has exactly one Kind.
type Kind int

const (
	// KindUnknown is the zero value, Classify never returns it
	KindUnknown Kind = iota
	// KindLonelyDashes is "-", "--" or "---"
	KindLonelyDashes
	// KindAssignmentFlag is a flag with an inline value: "--name=value", "-n=v", `--"name"=value`
	KindAssignmentFlag
	// KindAssignmentNormal contains "=" but is not an assignment flag: "name=value", "--=x"
	KindAssignmentNormal
	// KindFlag is "-v", "--verbose"
	KindFlag
	// KindNormal is anything else
	KindNormal
)

var kindNames = [...]string{
	KindUnknown:          "unknown",
	KindLonelyDashes:     "lonely-dashes",
	KindAssignmentFlag:   "assignment-flag",
	KindAssignmentNormal: "assignment-normal",
	KindFlag:             "flag",
	KindNormal:           "normal",
}

// Kinds lists all kinds Classify can return, in classification precedence order
var Kinds = []Kind{
	KindLonelyDashes,
	KindAssignmentFlag,
	KindAssignmentNormal,
	KindFlag,
	KindNormal,
}

func (k Kind) String() string {
	if k.IsValid() || k == KindUnknown {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsValid reports whether k is one of Kinds
func (k Kind) IsValid() bool {
	return k > KindUnknown && k <= KindNormal
}

// ParseKind returns the Kind with the given label ("flag", "lonely-dashes", ...)
func ParseKind(label string) (Kind, error) {
	for _, k := range Kinds {
		if kindNames[k] == label {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown argument kind %q", label)
}
