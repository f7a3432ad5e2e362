package config

import (
	"reflect"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/ARM-software/golang-folds/commonerrors"
)

// ValidateEmbedded validates every embedded or nested structure of cfg implementing IServiceConfiguration.
// All failures are reported, each prefixed with the mapstructure key of the field.
func ValidateEmbedded(cfg IServiceConfiguration) error {
	if cfg == nil {
		return commonerrors.UndefinedParameter("configuration")
	}
	r := reflect.ValueOf(cfg)
	if r.Kind() != reflect.Pointer || r.Elem().Kind() != reflect.Struct {
		return commonerrors.New(commonerrors.ErrInvalid, "configuration must be a pointer to a structure")
	}
	r = r.Elem()
	var result *multierror.Error
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		structField := r.Type().Field(i)
		if f.Kind() != reflect.Struct || !structField.IsExported() {
			continue
		}
		validator, ok := f.Addr().Interface().(IServiceConfiguration)
		if !ok {
			continue
		}
		if err := validator.Validate(); err != nil {
			result = multierror.Append(result, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "%v", fieldKey(structField)))
		}
	}
	return result.ErrorOrNil()
}

func fieldKey(field reflect.StructField) string {
	tag, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
	tag = strings.TrimSpace(tag)
	if tag != "" && tag != "-" {
		return tag
	}
	return field.Name
}
