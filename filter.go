// Package filterargv classifies command-line arguments by their shape (flags, assignments,
// lonely dashes, plain values) and filters them keeping only the chosen kinds.
package filterargv

import (
	"github.com/cardinalby/go-filter-argv/cmdargs"
)

// Filter returns the arguments that pass the filter defined by `opts`, in their input order.
// Duplicates are kept. The result is never nil.
// If `opts` are invalid, *OptionsError is returned and no arguments are processed.
//
// Only an empty Assignments falls back to its default ("all"). Bool fields have no unset state,
// so an Options literal drops every kind it doesn't set to true: Options{Flags: true} keeps flags
// and assignments only. Use DefaultOptions().WithFlags(true) to keep standard arguments as well.
func Filter(args []string, opts Options) ([]string, error) {
	normalized, err := opts.Normalize()
	if err != nil {
		return nil, err
	}
	res, err := cmdargs.NewArgs(args).Select(func(token cmdargs.Token) (bool, error) {
		return normalized.Keeps(token.Kind)
	})
	if err != nil {
		return nil, err
	}
	return res.Args, nil
}

// AssignmentArgsOnly returns "name=value" and "--name=value" arguments.
// See AssignmentArgsOnlyOptions.
func AssignmentArgsOnly(args []string) []string {
	return mustFilter(args, AssignmentArgsOnlyOptions())
}

// FlagArgsOnly returns "-v", "--verbose" flag arguments without inline values.
// See FlagArgsOnlyOptions.
func FlagArgsOnly(args []string) []string {
	return mustFilter(args, FlagArgsOnlyOptions())
}

// mustFilter is for predefined options that are always valid
func mustFilter(args []string, opts Options) []string {
	res, err := Filter(args, opts)
	if err != nil {
		panic(err)
	}
	return res
}
