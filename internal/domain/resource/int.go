package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Int is an integer that also accepts numeric strings when decoded.
// Sheet values entered through forms were historically stored as strings.
type Int int

// UnmarshalJSON accepts 3, 3.0, "3", "+3" and "" (zero)
func (i *Int) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := ParseInt(s)
		if err != nil {
			return err
		}
		*i = Int(n)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("resource: %s is not a number", data)
	}
	*i = Int(int(f))
	return nil
}

// UnmarshalYAML accepts the same forms as UnmarshalJSON
func (i *Int) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("resource: line %d: expected a number", value.Line)
	}
	if value.Tag == "!!null" {
		*i = 0
		return nil
	}
	n, err := ParseInt(value.Value)
	if err != nil {
		return fmt.Errorf("resource: line %d: %w", value.Line, err)
	}
	*i = Int(n)
	return nil
}

// ParseInt coerces form input such as " 4 ", "+3" or "-2". Blank input is zero.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, fmt.Errorf("%q is not a number", s)
		}
		return int(f), nil
	}
	return n, nil
}
