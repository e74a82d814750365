package cmdargs

// IterateTokens classifies the arguments one by one and passes them to `yield` in order.
// Iteration stops when `yield` returns false.
func (args Args) IterateTokens(yield func(token Token) (getNext bool)) {
	for i, arg := range args.Args {
		token := Token{
			Arg:   arg,
			Kind:  Classify(arg),
			Index: i,
		}
		if !yield(token) {
			return
		}
	}
}
