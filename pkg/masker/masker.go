package masker

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"
)

var ErrConfigNotPointer = errors.New("config must be a pointer to a struct")

// LogConfigs logs each config struct, nested structs included, as one line.
// String fields tagged masked:"true" are logged masked.
func LogConfigs(logger *zap.Logger, configs ...interface{}) error {
	for _, config := range configs {
		v := reflect.ValueOf(config)
		t := reflect.TypeOf(config)

		if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
			return ErrConfigNotPointer
		}
		v = v.Elem()
		t = t.Elem()

		logger.Info("Config", zap.Any(t.Name(), maskStructFields(v, t)))
	}
	return nil
}

// maskStructFields flattens exported fields into a map, masking the ones
// tagged masked:"true".
func maskStructFields(v reflect.Value, t reflect.Type) map[string]interface{} {
	result := make(map[string]interface{})
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)
		if !fieldType.IsExported() {
			continue
		}
		masked := fieldType.Tag.Get("masked") == "true"

		switch {
		case field.Kind() == reflect.Struct:
			result[fieldType.Name] = maskStructFields(field, field.Type())
		case field.Kind() == reflect.String && masked:
			result[fieldType.Name] = maskSensitiveData(field.String())
		case field.Type() == reflect.TypeOf(time.Duration(0)):
			result[fieldType.Name] = fmt.Sprint(field.Interface())
		default:
			result[fieldType.Name] = field.Interface()
		}
	}
	return result
}

// maskSensitiveData keeps the first and last characters. Short values are
// fully hidden and unset values stay empty so a missing secret is visible.
func maskSensitiveData(data string) string {
	if data == "" {
		return ""
	}
	if len(data) <= 2 {
		return "****"
	}
	return string(data[0]) + "****" + string(data[len(data)-1])
}
