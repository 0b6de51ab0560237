package utils

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestGetKeys(t *testing.T) {
	biff.AssertEqual(GetKeys(map[string]int{"sqlite": 1, "json": 2}), []string{"json", "sqlite"})
	biff.AssertEqual(GetKeys(map[string]int{}), []string{})
}

func TestRemarshalMap(t *testing.T) {
	type person struct {
		Name     string `json:"name"`
		Business bool   `json:"business"`
		Nip      string `json:"nip,omitempty"`
	}

	m, err := RemarshalMap(&person{Name: "Jan"})
	biff.AssertNil(err)
	biff.AssertEqual(m, map[string]any{"name": "Jan", "business": false})
}
