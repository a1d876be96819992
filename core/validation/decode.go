package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
)

// validate is safe for concurrent use and holds no per-request state.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return v
}

// Decode coerces raw into dst, which must be a pointer to a struct whose fields carry
// json and validate tags, and returns every field failure. A nil result means dst is
// fully populated and valid.
func Decode(raw map[string]any, dst any) (errs FieldErrors) {
	defer func() {
		if r := recover(); r != nil {
			errs = FieldErrors{{Message: fmt.Sprintf("invalid record: %v", r)}}
		}
	}()

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return FieldErrors{{Message: fmt.Sprintf("cannot decode into %T", dst)}}
	}
	rv = rv.Elem()
	rt := rv.Type()

	order := make(map[string]int, rt.NumField())
	coerceFailed := make(map[string]bool)

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := jsonName(sf)
		if name == "" || !sf.IsExported() {
			continue
		}
		order[name] = i

		value, ok := raw[name]
		if !ok || IsBlank(value) {
			continue
		}
		if err := assign(rv.Field(i), value); err != nil {
			errs = append(errs, FieldError{Field: name, Value: value, Message: err.Error()})
			coerceFailed[name] = true
		}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return append(errs, FieldError{Message: err.Error()})
		}
		for _, fe := range verrs {
			if coerceFailed[fe.Field()] {
				continue
			}
			errs = append(errs, FieldError{
				Field:   fe.Field(),
				Value:   raw[fe.Field()],
				Message: message(rt, fe),
			})
		}
	}

	sort.SliceStable(errs, func(i, j int) bool {
		return order[errs[i].Field] < order[errs[j].Field]
	})
	return errs
}

// IsBlank reports whether a raw value counts as absent.
func IsBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}

func assign(field reflect.Value, value any) error {
	target := field
	if field.Kind() == reflect.Pointer {
		target = reflect.New(field.Type().Elem()).Elem()
	}

	switch target.Kind() {
	case reflect.String:
		s, err := cast.ToStringE(value)
		if err != nil {
			return errors.New("must be a string")
		}
		target.SetString(strings.TrimSpace(s))
	case reflect.Float64, reflect.Float32:
		f, err := toFloat(value)
		if err != nil {
			return errors.New("must be a number")
		}
		target.SetFloat(f)
	case reflect.Int, reflect.Int64, reflect.Int32:
		f, err := toFloat(value)
		if err != nil {
			return errors.New("must be a number")
		}
		if math.Trunc(f) != f || math.IsInf(f, 0) || f < math.MinInt64 || f >= math.MaxInt64 || target.OverflowInt(int64(f)) {
			return errors.New("must be an integer")
		}
		target.SetInt(int64(f))
	default:
		return fmt.Errorf("unsupported field type %s", target.Type())
	}

	if field.Kind() == reflect.Pointer {
		ptr := reflect.New(field.Type().Elem())
		ptr.Elem().Set(target)
		field.Set(ptr)
	}
	return nil
}

func toFloat(value any) (float64, error) {
	switch t := value.(type) {
	case bool:
		return 0, fmt.Errorf("unexpected bool %v", t)
	case string:
		f, err := cast.ToFloat64E(strings.TrimSpace(t))
		if err != nil {
			return 0, err
		}
		if math.IsNaN(f) {
			return 0, errors.New("not a number")
		}
		return f, nil
	default:
		return cast.ToFloat64E(value)
	}
}

func jsonName(sf reflect.StructField) string {
	name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func message(rt reflect.Type, fe validator.FieldError) string {
	label := fe.Field()
	if sf, ok := rt.FieldByName(fe.StructField()); ok {
		if l := sf.Tag.Get("label"); l != "" {
			label = l
		}
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "gtefield":
		return "must be greater than or equal to " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
