package collection

import (
	"os"

	"github.com/google/uuid"
)

func Environment(f func(filename string)) {
	filename := "test_" + uuid.New().String() + ".jsonl"
	defer os.Remove(filename)

	f(filename)
}

func openJSON(filename string) *Collection {
	storage, err := NewJSONStorage(filename)
	if err != nil {
		panic(err)
	}
	c, err := OpenCollection(storage)
	if err != nil {
		panic(err)
	}
	return c
}

func ids(c *Collection) []int64 {
	result := []int64{}
	c.Traverse(func(row *Row) bool {
		result = append(result, row.I)
		return true
	})
	return result
}
