package config

import (
	"flag"
	"fmt"

	"github.com/spf13/pflag"

	filterargv "github.com/cardinalby/go-filter-argv"
	"github.com/cardinalby/go-filter-argv/flago"
)

// RegisterOptionFlags adds a flag for every tagged field of opts to fs.
// The current field values are shown as the flag defaults. Flag names equal the
// config keys (KeyKeepLonelyDashes, ...), so Load picks the parsed values up.
func RegisterOptionFlags(fs *pflag.FlagSet, opts *filterargv.Options) error {
	optionFlags := flago.NewFlagSet("options", flag.ContinueOnError)
	if err := optionFlags.StructVar(opts); err != nil {
		return fmt.Errorf("registering option flags: %w", err)
	}

	fs.AddGoFlagSet(optionFlags.FlagSet)

	return nil
}
