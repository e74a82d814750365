package flago

import (
	"fmt"
	"reflect"
)

// fieldInfo contains info about a struct field that should be registered as a flag
type fieldInfo struct {
	fieldName   string
	flagName    string
	usage       string
	varRegister varRegister
}

// collectFieldsInfo validates the tags and types of the struct fields
// and returns info about the fields tagged as flags
func collectFieldsInfo(structValue reflect.Value) (res []fieldInfo, err error) {
	sValType := structValue.Type()
	for i := 0; i < structValue.NumField(); i++ {
		field := sValType.Field(i)
		flagName, usage, err := getFlagTags(field)
		if err != nil {
			return nil, fmt.Errorf(`field "%s": %w`, field.Name, err)
		}
		if flagName == "" {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf(`field "%s" tagged with "%s": unexported`, field.Name, flagNameTag)
		}
		varRegister, err := getVarRegister(structValue.Field(i))
		if err != nil {
			return nil, fmt.Errorf(`field "%s" tagged with "%s": %w`, field.Name, flagNameTag, err)
		}
		res = append(res, fieldInfo{
			fieldName:   field.Name,
			flagName:    flagName,
			usage:       usage,
			varRegister: varRegister,
		})
	}
	return res, nil
}
