package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cardinalby/go-filter-argv/internal/config"
)

type classifiedArg struct {
	Arg  string `json:"arg" yaml:"arg"`
	Kind string `json:"kind" yaml:"kind"`
}

// writeArgs prints args one per line or as a json/yaml list.
func writeArgs(w io.Writer, format string, args []string) error {
	if format != config.OutputLines {
		return encode(w, format, args)
	}

	for _, arg := range args {
		if _, err := fmt.Fprintln(w, arg); err != nil {
			return err
		}
	}

	return nil
}

// writeClassified prints "kind<TAB>arg" lines or a json/yaml list of objects.
func writeClassified(w io.Writer, format string, args []classifiedArg) error {
	if format != config.OutputLines {
		return encode(w, format, args)
	}

	for _, a := range args {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", a.Kind, a.Arg); err != nil {
			return err
		}
	}

	return nil
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}

		return nil
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
