package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a list of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// NutritionalInfo is the optional nutrition block on a product, stored as a
// JSON column.
type NutritionalInfo struct {
	Calories float64  `json:"calories,omitempty"`
	Protein  float64  `json:"protein,omitempty"`
	Carbs    float64  `json:"carbs,omitempty"`
	Fiber    float64  `json:"fiber,omitempty"`
	Vitamins []string `json:"vitamins,omitempty"`
}

func (n NutritionalInfo) Value() (driver.Value, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (n *NutritionalInfo) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*n = NutritionalInfo{}
		return nil
	case []byte:
		return json.Unmarshal(v, n)
	case string:
		return json.Unmarshal([]byte(v), n)
	default:
		return fmt.Errorf("cannot scan %T into NutritionalInfo", src)
	}
}
