package flago

import (
	"flag"
	"fmt"
	"reflect"
)

// varRegister is a callback that registers a field as a flag in the given FlagSet
type varRegister func(flagSet *flag.FlagSet, name, usage string)

func getVarRegister(fieldValue reflect.Value) (varRegister, error) {
	valuePtr := fieldValue.Addr().UnsafePointer()

	// named types (e.g. `type Mode string`) share the memory layout of their kind
	switch fieldValue.Kind() {
	case reflect.String:
		return func(flagSet *flag.FlagSet, name, usage string) {
			flagSet.StringVar((*string)(valuePtr), name, fieldValue.String(), usage)
		}, nil
	case reflect.Bool:
		return func(flagSet *flag.FlagSet, name, usage string) {
			flagSet.BoolVar((*bool)(valuePtr), name, fieldValue.Bool(), usage)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported field type %s", fieldValue.Type().String())
	}
}
