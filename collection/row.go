package collection

import "encoding/json"

type Row struct {
	I       int64 // id assigned by the collection, also stored as "id" in Payload
	Payload json.RawMessage
}

// Less returns true if the row is less than the other row.
// This is required for btree.Item interface.
func (r *Row) Less(than *Row) bool {
	return r.I < than.I
}
