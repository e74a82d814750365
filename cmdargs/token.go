package cmdargs

// Token is a classified argument
type Token struct {
	Arg  string
	Kind Kind
	// Index is the position of Arg in Args.Args
	Index int
}

// IsFlagLike reports whether the token is a flag, with or without an inline value
func (t Token) IsFlagLike() bool {
	return t.Kind == KindFlag || t.Kind == KindAssignmentFlag
}

// IsAssignment reports whether the token contains a "=" assignment of any kind
func (t Token) IsAssignment() bool {
	return t.Kind == KindAssignmentFlag || t.Kind == KindAssignmentNormal
}
