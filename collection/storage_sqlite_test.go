package collection

import (
	"path/filepath"
	"testing"

	. "github.com/fulldump/biff"
	"github.com/tidwall/gjson"
)

func openSQLite(t *testing.T, filename string) *Collection {
	t.Helper()

	storage, err := NewSQLiteStorage(filename)
	if err != nil {
		t.Fatalf("open sqlite storage: %v", err)
	}
	c, err := OpenCollection(storage)
	if err != nil {
		t.Fatalf("open collection: %v", err)
	}
	return c
}

func TestSQLiteStorage_Replay(t *testing.T) {

	filename := filepath.Join(t.TempDir(), "clients.sqlite")

	c := openSQLite(t, filename)
	c.Index("by-phone", &IndexOptions{Field: "phone", Sparse: true})
	c.Insert(map[string]interface{}{"name": "Jan", "phone": "123"})
	c.Insert(map[string]interface{}{"name": "Eva"})
	c.Remove(1)
	AssertNil(c.Close())

	c = openSQLite(t, filename)
	defer c.Close()

	AssertEqual(ids(c), []int64{2})
	AssertEqual(c.MaxID(), int64(2))
	AssertTrue(c.HasIndex("by-phone"))

	row, ok := c.Get(2)
	AssertTrue(ok)
	AssertEqual(gjson.GetBytes(row.Payload, "name").String(), "Eva")
}

func TestSQLiteStorage_Drop(t *testing.T) {

	filename := filepath.Join(t.TempDir(), "clients.sqlite")

	c := openSQLite(t, filename)
	c.Insert(map[string]interface{}{"name": "Jan"})
	AssertNil(c.Drop())

	c = openSQLite(t, filename)
	defer c.Close()
	AssertEqual(c.Len(), 0)
}
