package collection

import (
	"errors"
	"io"
	"os"
	"testing"

	. "github.com/fulldump/biff"
)

// brokenDisk writes half of the first chunk it receives and then fails.
type brokenDisk struct {
	w      io.Writer
	broken bool
}

func (d *brokenDisk) Write(p []byte) (int, error) {
	if d.broken {
		return d.w.Write(p)
	}
	d.broken = true
	n, _ := d.w.Write(p[:len(p)/2])
	return n, errors.New("disk full")
}

func TestJSONStorage_RecoversFromFailedWrite(t *testing.T) {
	Environment(func(filename string) {

		storage, err := NewJSONStorage(filename)
		AssertNil(err)
		c, err := OpenCollection(storage)
		AssertNil(err)

		_, err = c.Insert(map[string]any{"name": "Jan"})
		AssertNil(err)

		storage.buffer.Reset(&brokenDisk{w: storage.file})

		_, err = c.Insert(map[string]any{"name": "Eva"})
		AssertNotNil(err)

		info, err := os.Stat(filename)
		AssertNil(err)
		AssertEqual(info.Size(), storage.size)

		row, err := c.Insert(map[string]any{"name": "Olga"})
		AssertNil(err)
		AssertEqual(row.I, int64(2))

		AssertNil(c.Close())

		reloaded := openJSON(filename)
		AssertEqual(ids(reloaded), []int64{1, 2})
	})
}

func TestJSONStorage_SizeOnReopen(t *testing.T) {
	Environment(func(filename string) {

		c := openJSON(filename)
		_, err := c.Insert(map[string]any{"name": "Jan"})
		AssertNil(err)
		AssertNil(c.Close())

		info, err := os.Stat(filename)
		AssertNil(err)

		storage, err := NewJSONStorage(filename)
		AssertNil(err)
		defer storage.Close()
		AssertEqual(storage.size, info.Size())
	})
}
