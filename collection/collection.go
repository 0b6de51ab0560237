package collection

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

var ErrCollectionClosed = errors.New("collection is closed")

// IDField is the payload field where the row id is stamped on insert.
const IDField = "id"

type Collection struct {
	storage Storage
	Rows    *RowContainer
	mutex   *sync.RWMutex
	Indexes map[string]Index
	maxID   int64 // ids are never reused, it survives removes and reloads
	closed  bool
}

func OpenCollection(storage Storage) (*Collection, error) {

	c := &Collection{
		storage: storage,
		Rows:    NewRowContainer(),
		mutex:   &sync.RWMutex{},
		Indexes: map[string]Index{},
	}

	err := storage.Load(c.apply)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}

	return c, nil
}

// apply replays one persisted command, OpenCollection is a sequence so no
// locking is needed here.
func (c *Collection) apply(command *Command) error {

	switch command.Name {
	case CommandInsert:
		id := gjson.GetBytes(command.Payload, IDField).Int()
		if id <= 0 {
			return fmt.Errorf("insert command %s: missing id", command.Uuid)
		}
		row := &Row{
			I:       id,
			Payload: json.RawMessage(command.Payload),
		}
		err := indexInsert(c.Indexes, row)
		if err != nil {
			return fmt.Errorf("insert command %s: %w", command.Uuid, err)
		}
		c.Rows.ReplaceOrInsert(row)
		if id > c.maxID {
			c.maxID = id
		}

	case CommandRemove:
		params := &RemoveCommand{}
		err := json.Unmarshal(command.Payload, params)
		if err != nil {
			return fmt.Errorf("remove command %s: %w", command.Uuid, err)
		}
		row, exists := c.Rows.Get(params.I)
		if !exists {
			return nil
		}
		err = indexRemove(c.Indexes, row)
		if err != nil {
			return fmt.Errorf("remove command %s: %w", command.Uuid, err)
		}
		c.Rows.Delete(row)

	case CommandIndex:
		params := &CreateIndexCommand{}
		err := json.Unmarshal(command.Payload, params)
		if err != nil {
			return fmt.Errorf("index command %s: %w", command.Uuid, err)
		}
		return c.createIndex(params.Name, params.Options)

	case CommandDropIndex:
		params := &DropIndexCommand{}
		err := json.Unmarshal(command.Payload, params)
		if err != nil {
			return fmt.Errorf("drop index command %s: %w", command.Uuid, err)
		}
		delete(c.Indexes, params.Name)

	default:
		return fmt.Errorf("unknown command '%s'", command.Name)
	}

	return nil
}

// Insert assigns the next id to item, persists it and only then makes it
// visible. On error nothing changes in memory.
func (c *Collection) Insert(item map[string]any) (*Row, error) {

	if item == nil {
		item = map[string]any{}
	}

	payload, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("json encode payload: %w", err)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return nil, ErrCollectionClosed
	}

	id := c.maxID + 1

	payload, err = sjson.SetBytes(payload, IDField, id)
	if err != nil {
		return nil, fmt.Errorf("set id: %w", err)
	}

	row := &Row{
		I:       id,
		Payload: payload,
	}

	err = indexInsert(c.Indexes, row)
	if err != nil {
		return nil, err
	}

	command, err := newCommand(CommandInsert, []byte(payload))
	if err != nil {
		indexRemove(c.Indexes, row)
		return nil, err
	}

	err = c.storage.Persist(command)
	if err != nil {
		indexRemove(c.Indexes, row)
		return nil, fmt.Errorf("persist insert: %w", err)
	}

	c.Rows.ReplaceOrInsert(row)
	c.maxID = id

	return row, nil
}

// Remove deletes the row with that id. Removing a missing id is not an
// error and writes nothing, removed reports whether a row was there.
func (c *Collection) Remove(id int64) (removed bool, err error) {

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return false, ErrCollectionClosed
	}

	row, exists := c.Rows.Get(id)
	if !exists {
		return false, nil
	}

	command, err := newCommand(CommandRemove, &RemoveCommand{I: id})
	if err != nil {
		return false, err
	}

	err = c.storage.Persist(command)
	if err != nil {
		return false, fmt.Errorf("persist remove: %w", err)
	}

	err = indexRemove(c.Indexes, row)
	if err != nil {
		return true, fmt.Errorf("could not free index: %w", err)
	}

	c.Rows.Delete(row)

	return true, nil
}

func (c *Collection) Get(id int64) (*Row, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.Rows.Get(id)
}

// Traverse walks rows in ascending id order. The walk sees the rows present
// when it started, inserts and removes done meanwhile are not observed.
func (c *Collection) Traverse(f func(row *Row) bool) {

	c.mutex.Lock()
	snapshot := c.Rows.Snapshot()
	c.mutex.Unlock()

	snapshot.Traverse(f)
}

func (c *Collection) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.Rows.Len()
}

func (c *Collection) MaxID() int64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return c.maxID
}

func (c *Collection) HasIndex(name string) bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	_, exists := c.Indexes[name]
	return exists
}

func (c *Collection) Index(name string, options *IndexOptions) error {

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return ErrCollectionClosed
	}

	err := c.createIndex(name, options)
	if err != nil {
		return err
	}

	command, err := newCommand(CommandIndex, &CreateIndexCommand{
		Name:    name,
		Options: options,
	})
	if err == nil {
		err = c.storage.Persist(command)
	}
	if err != nil {
		delete(c.Indexes, name)
		return fmt.Errorf("persist index: %w", err)
	}

	return nil
}

func (c *Collection) createIndex(name string, options *IndexOptions) error {

	if _, exists := c.Indexes[name]; exists {
		return fmt.Errorf("index '%s' already exists", name)
	}
	if options == nil || options.Field == "" {
		return fmt.Errorf("index '%s': field is required", name)
	}

	index := NewIndexBTree(options)

	var err error
	c.Rows.Traverse(func(row *Row) bool {
		err = index.AddRow(row)
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("index row: %w", err)
	}

	c.Indexes[name] = index

	return nil
}

func (c *Collection) DropIndex(name string) error {

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return ErrCollectionClosed
	}

	if _, exists := c.Indexes[name]; !exists {
		return fmt.Errorf("dropIndex: index '%s' not found", name)
	}

	command, err := newCommand(CommandDropIndex, &DropIndexCommand{Name: name})
	if err != nil {
		return err
	}

	err = c.storage.Persist(command)
	if err != nil {
		return fmt.Errorf("persist drop index: %w", err)
	}

	delete(c.Indexes, name)

	return nil
}

// FindBy walks the rows whose indexed value equals value, by ascending id.
func (c *Collection) FindBy(indexName, value string, f func(row *Row) bool) error {

	c.mutex.RLock()
	index, exists := c.Indexes[indexName]
	if !exists {
		c.mutex.RUnlock()
		return fmt.Errorf("index '%s' does not exist", indexName)
	}
	rows := []*Row{}
	index.Traverse(value, func(row *Row) bool {
		rows = append(rows, row)
		return true
	})
	c.mutex.RUnlock()

	for _, row := range rows {
		if !f(row) {
			break
		}
	}

	return nil
}

func (c *Collection) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	return c.storage.Close()
}

func (c *Collection) Drop() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.closed = true

	return c.storage.Drop()
}

func indexInsert(indexes map[string]Index, row *Row) (err error) {
	rollbacks := make([]Index, 0, len(indexes))

	defer func() {
		if err == nil {
			return
		}
		for _, index := range rollbacks {
			index.RemoveRow(row)
		}
	}()

	for key, index := range indexes {
		err = index.AddRow(row)
		if err != nil {
			return fmt.Errorf("index add '%s': %w", key, err)
		}
		rollbacks = append(rollbacks, index)
	}

	return
}

func indexRemove(indexes map[string]Index, row *Row) (err error) {
	for key, index := range indexes {
		err = index.RemoveRow(row)
		if err != nil {
			return fmt.Errorf("index remove '%s': %w", key, err)
		}
	}
	return
}
