package utils

import (
	"github.com/goccy/go-json"
)

// JSON marshals input into json
func JSON(input any) ([]byte, error) {
	return json.Marshal(input)
}

// MustJSON marshals input into json and panics on error
func MustJSON(input any) []byte {
	data, err := JSON(input)
	if err != nil {
		panic(err)
	}
	return data
}

// UnmarshalJSON parses json data into the output
func UnmarshalJSON(data []byte, output any) error {
	return json.Unmarshal(data, output)
}
