package collection

import (
	"fmt"
	"math"

	"github.com/google/btree"
	"github.com/tidwall/gjson"
)

type Index interface {
	AddRow(row *Row) error
	RemoveRow(row *Row) error
	Traverse(value string, f func(row *Row) bool)
	GetOptions() *IndexOptions
}

// IndexOptions describes a single field index.
// Non-unique indexes keep every row sharing a value, ordered by id.
type IndexOptions struct {
	Field  string `json:"field"`
	Sparse bool   `json:"sparse"`
	Unique bool   `json:"unique"`
}

type indexEntry struct {
	Value string
	ID    int64
	Row   *Row
}

type IndexBTree struct {
	Btree   *btree.BTreeG[*indexEntry]
	Options *IndexOptions
}

func NewIndexBTree(options *IndexOptions) *IndexBTree {
	return &IndexBTree{
		Btree: btree.NewG(32, func(a, b *indexEntry) bool {
			if a.Value != b.Value {
				return a.Value < b.Value
			}
			return a.ID < b.ID
		}),
		Options: options,
	}
}

func (b *IndexBTree) GetOptions() *IndexOptions {
	return b.Options
}

// indexValue extracts the indexed value from the row payload.
// ok is false when the row must not be indexed (sparse and missing).
func (b *IndexBTree) indexValue(row *Row) (value string, ok bool, err error) {

	field := b.Options.Field
	result := gjson.GetBytes(row.Payload, field)
	if !result.Exists() || result.Type == gjson.Null {
		if b.Options.Sparse {
			return "", false, nil
		}
		return "", false, fmt.Errorf("field `%s` is indexed and mandatory", field)
	}

	switch result.Type {
	case gjson.String, gjson.Number:
		return result.String(), true, nil
	default:
		return "", false, fmt.Errorf("field `%s`: type not supported", field)
	}
}

func (b *IndexBTree) AddRow(row *Row) error {

	value, ok, err := b.indexValue(row)
	if err != nil || !ok {
		return err
	}

	if b.Options.Unique && b.has(value) {
		return fmt.Errorf("index conflict: field '%s' with value '%s'", b.Options.Field, value)
	}

	b.Btree.ReplaceOrInsert(&indexEntry{
		Value: value,
		ID:    row.I,
		Row:   row,
	})

	return nil
}

func (b *IndexBTree) RemoveRow(row *Row) error {

	value, ok, err := b.indexValue(row)
	if err != nil || !ok {
		return err
	}

	b.Btree.Delete(&indexEntry{
		Value: value,
		ID:    row.I,
	})

	return nil
}

func (b *IndexBTree) has(value string) bool {
	found := false
	b.Traverse(value, func(row *Row) bool {
		found = true
		return false
	})
	return found
}

func (b *IndexBTree) Traverse(value string, f func(row *Row) bool) {

	pivot := &indexEntry{
		Value: value,
		ID:    math.MinInt64,
	}

	b.Btree.AscendGreaterOrEqual(pivot, func(entry *indexEntry) bool {
		if entry.Value != value {
			return false
		}
		return f(entry.Row)
	})
}
