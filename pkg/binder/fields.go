package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// structOf returns the struct v points to.
func structOf(v any, kind error) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: target must be a non-nil pointer to a struct, got %T", kind, v)
	}
	return rv.Elem(), nil
}

// fieldName reads the name a field is bound under for tag. Untagged fields
// use their lowercased Go name unless strict is set, in which case they are
// skipped.
func fieldName(sf reflect.StructField, tag string, strict bool) (string, bool) {
	name, ok := sf.Tag.Lookup(tag)
	if !ok || name == "" {
		if strict {
			return "", false
		}
		return strings.ToLower(sf.Name), true
	}
	name, _, _ = strings.Cut(name, ",")
	if name == "-" || name == "" {
		return "", false
	}
	return name, true
}

// bindValues copies the values named by tag into the fields of v. Missing
// values leave the field alone.
func bindValues(v any, tag string, strict bool, values map[string][]string, kind error) error {
	rv, err := structOf(v, kind)
	if err != nil {
		return err
	}
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, ok := fieldName(sf, tag, strict)
		if !ok {
			continue
		}
		vals := values[name]
		if len(vals) == 0 {
			continue
		}
		if err := setValue(rv.Field(i), vals); err != nil {
			return fmt.Errorf("%w: field %s: %v", kind, sf.Name, err)
		}
	}
	return nil
}

// setValue parses vals into field. Slices take every value, split on commas;
// scalars take the first.
func setValue(field reflect.Value, vals []string) error {
	switch field.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setValue(field.Elem(), vals)
	case reflect.Slice:
		var parts []string
		for _, v := range vals {
			for p := range strings.SplitSeq(v, ",") {
				parts = append(parts, strings.TrimSpace(p))
			}
		}
		slice := reflect.MakeSlice(field.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := setScalar(slice.Index(i), p); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	default:
		return setScalar(field, vals[0])
	}
}

func setScalar(field reflect.Value, s string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(s)
	case reflect.Bool:
		b, err := parseBool(s)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", s)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported type %s", field.Type())
	}
	return nil
}

// parseBool accepts what HTML checkboxes and people send.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "0", "f", "false", "off", "no":
		return false, nil
	case "1", "t", "true", "on", "yes":
		return true, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
