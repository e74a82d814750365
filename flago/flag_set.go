package flago

import (
	"errors"
	"flag"
	"fmt"
	"reflect"
)

var ErrFlagRedefined = errors.New("flag redefined")

// FlagSet is a wrapper around *flag.FlagSet that allows to register structs parsing their fields as flags.
// Registered fields are bound to the flags directly: parsing a flag sets the field.
type FlagSet struct {
	*flag.FlagSet
}

// Wrap creates a new FlagSet wrapping the given `stdFlagSet`
func Wrap(stdFlagSet *flag.FlagSet) *FlagSet {
	return &FlagSet{
		FlagSet: stdFlagSet,
	}
}

// NewFlagSet creates a new FlagSet wrapping new flag.FlagSet with the given name and error handling policy
func NewFlagSet(name string, errorHandling flag.ErrorHandling) *FlagSet {
	return Wrap(flag.NewFlagSet(name, errorHandling))
}

// StructVar registers the fields of the given struct tagged with `flag:"name"` as flags.
// `flagUsage` tag sets the flag usage. Current field values become the flag defaults.
// Supported field kinds are bool and string (including named string types).
// No flags are registered if any field is invalid or any flag name is already defined.
func (fls *FlagSet) StructVar(p any) error {
	if fls.FlagSet == nil {
		return errors.New("wrapped FlagSet is nil")
	}
	structValue, err := getStructPointerElem(p)
	if err != nil {
		return err
	}

	// collect fields info but don't register flags until all fields are validated
	fieldsInfo, err := collectFieldsInfo(structValue)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(fieldsInfo))
	for _, info := range fieldsInfo {
		_, isDuplicate := seen[info.flagName]
		if isDuplicate || fls.Lookup(info.flagName) != nil {
			return fmt.Errorf(`field "%s": %w: "%s"`, info.fieldName, ErrFlagRedefined, info.flagName)
		}
		seen[info.flagName] = struct{}{}
	}

	for _, info := range fieldsInfo {
		info.varRegister(fls.FlagSet, info.flagName, info.usage)
	}
	return nil
}

func getStructPointerElem(p any) (res reflect.Value, err error) {
	val := reflect.ValueOf(p)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return reflect.Value{}, fmt.Errorf("expected pointer to struct, got %T", p)
	}
	res = val.Elem()
	if res.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected struct, got %s", res.Type().Name())
	}
	return res, nil
}
