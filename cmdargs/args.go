package cmdargs

// Args is an ordered list of command-line arguments.
// Methods never modify Args, they return new values.
type Args struct {
	Args []string
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

// Kinds returns the Kind of every argument, in order
func (args Args) Kinds() []Kind {
	res := make([]Kind, 0, len(args.Args))
	args.IterateTokens(func(token Token) bool {
		res = append(res, token.Kind)
		return true
	})
	return res
}

// Select returns the arguments for which `keep` returns true, preserving their order and duplicates.
// The first error returned by `keep` stops the selection and is returned with no partial result.
// The result is never nil.
func (args Args) Select(keep func(token Token) (bool, error)) (res Args, err error) {
	res.Args = make([]string, 0, len(args.Args))
	args.IterateTokens(func(token Token) bool {
		var isKept bool
		if isKept, err = keep(token); err != nil {
			return false
		}
		if isKept {
			res.Args = append(res.Args, token.Arg)
		}
		return true
	})
	if err != nil {
		return Args{}, err
	}
	return res, nil
}
