package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings.
// It stays in sync when new fields are added to Settings.
func GetSettingsExample() map[string]any {
	return exampleFor(reflect.TypeOf(Settings{}))
}

func exampleFor(t reflect.Type) map[string]any {
	example := make(map[string]any)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}
		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}
	return example
}

// generateExampleValue creates example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		elemType := t.Elem()

		switch elemType.Kind() {
		case reflect.Struct:
			return exampleFor(elemType)
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int, reflect.Int64:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 1000
			case "daily_late_fee":
				return DefaultDailyLateFee
			case "sequence_timeout_ms":
				return 2000
			case "double_tap_timeout_ms":
				return 300
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "db_path":
			return "~/.rentdesk/rentdesk.db"
		case "double_tap_key":
			return DefaultDoubleTapKey
		default:
			return "example"
		}
	case reflect.Map:
		if t.Name() == "ChordsConfig" {
			return map[string]string{"g x": "/reservations/new"}
		}
	case reflect.Slice:
		if fieldName == "operators" {
			return []string{"ana", "rui"}
		}
		return []string{"example1", "example2"}
	}

	return nil
}
