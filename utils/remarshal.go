package utils

import (
	"encoding/json"
)

// Remarshal copies input into output through its JSON representation.
func Remarshal(input interface{}, output interface{}) (err error) {
	b, err := json.Marshal(input)
	if nil != err {
		return
	}
	return json.Unmarshal(b, output)
}

// RemarshalMap returns the JSON object representation of input.
func RemarshalMap(input interface{}) (map[string]any, error) {
	output := map[string]any{}
	err := Remarshal(input, &output)
	if err != nil {
		return nil, err
	}
	return output, nil
}
