package models

import "fmt"

// StringList is a field that may be written as a single value or an array.
// Either form decodes to a list.
type StringList []string

// UnmarshalTOML resolves the scalar-or-array shape at decode time.
func (l *StringList) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case nil:
		*l = StringList{}
	case string:
		if v == "" {
			*l = StringList{}
			return nil
		}
		*l = StringList{v}
	case []any:
		out := make(StringList, 0, len(v))
		for i, item := range v {
			s, err := scalarString(item)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, s)
		}
		*l = out
	default:
		s, err := scalarString(v)
		if err != nil {
			return err
		}
		*l = StringList{s}
	}
	return nil
}

func scalarString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case int64, float64, bool:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("expected a string, got %T", v)
	}
}
