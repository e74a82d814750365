package flago

import (
	"fmt"
	"reflect"
)

const (
	flagNameTag  = "flag"
	flagUsageTag = "flagUsage"
)

// getFlagTags returns empty `flagName` for the fields that are not flags
func getFlagTags(field reflect.StructField) (flagName string, usage string, err error) {
	tags := field.Tag
	if flagName = tags.Get(flagNameTag); flagName == "-" {
		flagName = ""
	}
	usage, hasUsage := tags.Lookup(flagUsageTag)
	if flagName == "" && hasUsage {
		return "", "", fmt.Errorf(`"%s" tag can be used only with "%s" tag`, flagUsageTag, flagNameTag)
	}
	return flagName, usage, nil
}
