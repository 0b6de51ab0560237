package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"sync"

	"github.com/fulldump/clientsdb/collection"
	"github.com/fulldump/clientsdb/database"
	"github.com/fulldump/clientsdb/search"
	"github.com/fulldump/clientsdb/utils"
)

const (
	CollectionName   = "clientsStore"
	PhoneNumberIndex = "phoneNumber"
)

// Store is the handle returned by Initialize. Every operation goes through
// it, there is no package level state.
type Store struct {
	db         *database.Database
	collection *collection.Collection
	mutex      sync.RWMutex
	reset      bool
}

// Initialize opens the clients collection, creating it with its phoneNumber
// index when missing. Calling it on an initialized database is a no-op apart
// from returning a new handle.
func Initialize(ctx context.Context, db *database.Database) (*Store, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if status := db.GetStatus(); status != database.StatusOperating {
		return nil, fmt.Errorf("%w: database is %s", ErrStorageUnavailable, status)
	}

	col, err := db.OpenCollection(CollectionName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if !col.HasIndex(PhoneNumberIndex) {
		err = col.Index(PhoneNumberIndex, &collection.IndexOptions{
			Field:  "phoneNumber",
			Sparse: true,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: create index: %w", ErrStorageUnavailable, err)
		}
	}

	return &Store{
		db:         db,
		collection: col,
	}, nil
}

func (s *Store) getCollection() (*collection.Collection, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.reset {
		return nil, fmt.Errorf("%w: storage was reset, initialize again", ErrStorageUnavailable)
	}

	return s.collection, nil
}

// Create stores a new client and returns it with its assigned id.
func (s *Store) Create(ctx context.Context, fields Fields) (*Client, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	col, err := s.getCollection()
	if err != nil {
		return nil, err
	}

	item, err := utils.RemarshalMap(fields)
	if err != nil {
		return nil, fmt.Errorf("encode client: %w", err)
	}

	row, err := col.Insert(item)
	if errors.Is(err, collection.ErrCollectionClosed) {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return decodeClient(row)
}

// Delete removes the client with that id. Deleting a missing id succeeds.
func (s *Store) Delete(ctx context.Context, id int64) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	col, err := s.getCollection()
	if err != nil {
		return err
	}

	_, err = col.Remove(id)
	if errors.Is(err, collection.ErrCollectionClosed) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, id int64) (*Client, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	col, err := s.getCollection()
	if err != nil {
		return nil, err
	}

	row, exists := col.Get(id)
	if !exists {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	return decodeClient(row)
}

// EnumerateAll yields every client by ascending id. Each call scans again
// from the beginning over the clients present when the scan starts.
func (s *Store) EnumerateAll(ctx context.Context) iter.Seq2[*Client, error] {
	return s.scan(ctx, search.Query{})
}

// Search is EnumerateAll keeping only the clients matching query.
func (s *Store) Search(ctx context.Context, query string) iter.Seq2[*Client, error] {
	return s.scan(ctx, search.Compile(query))
}

func (s *Store) scan(ctx context.Context, query search.Query) iter.Seq2[*Client, error] {
	return func(yield func(*Client, error) bool) {

		col, err := s.getCollection()
		if err != nil {
			yield(nil, err)
			return
		}

		col.Traverse(func(row *collection.Row) bool {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return false
			}
			if !query.MatchJSON(row.Payload) {
				return true
			}
			return yield(decodeClient(row))
		})
	}
}

// FindByPhoneNumber returns the clients with exactly that phone number using
// the phoneNumber index.
func (s *Store) FindByPhoneNumber(ctx context.Context, phoneNumber string) ([]*Client, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	col, err := s.getCollection()
	if err != nil {
		return nil, err
	}

	result := []*Client{}
	var decodeErr error
	err = col.FindBy(PhoneNumberIndex, phoneNumber, func(row *collection.Row) bool {
		client, err := decodeClient(row)
		if err != nil {
			decodeErr = err
			return false
		}
		result = append(result, client)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if decodeErr != nil {
		return nil, decodeErr
	}

	return result, nil
}

func (s *Store) Count() (int, error) {
	col, err := s.getCollection()
	if err != nil {
		return 0, err
	}
	return col.Len(), nil
}

// Reset drops the collection with all its clients. It cannot be undone and
// leaves this handle unusable, Initialize must be called again.
func (s *Store) Reset(ctx context.Context) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.reset {
		return nil
	}
	s.reset = true

	err := s.db.DropCollection(CollectionName)
	if err != nil {
		return fmt.Errorf("%w: reset: %w", ErrStorageUnavailable, err)
	}

	return nil
}

// IsReset reports whether Reset ran on this handle.
func (s *Store) IsReset() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.reset
}

func decodeClient(row *collection.Row) (*Client, error) {
	client := &Client{}
	err := json.Unmarshal(row.Payload, client)
	if err != nil {
		return nil, fmt.Errorf("decode client %d: %w", row.I, err)
	}
	return client, nil
}
