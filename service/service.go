package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/clientsdb/clients"
	"github.com/fulldump/clientsdb/database"
	"github.com/fulldump/clientsdb/utils"
)

var ErrInvalidFilter = errors.New("invalid filter")

type Service struct {
	db    *database.Database
	mutex sync.Mutex
	store *clients.Store
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

// getStore initializes the store on first use. After a reset the same
// handle is returned until Reload.
func (s *Service) getStore(ctx context.Context) (*clients.Store, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.store != nil {
		return s.store, nil
	}

	store, err := clients.Initialize(ctx, s.db)
	if err != nil {
		return nil, err
	}
	s.store = store

	return store, nil
}

func (s *Service) Status(ctx context.Context) *Status {

	status := &Status{
		Status: s.db.GetStatus(),
		Engine: s.db.Config.Engine,
	}

	store, err := s.getStore(ctx)
	if err != nil {
		return status
	}

	status.Reset = store.IsReset()
	count, err := store.Count()
	if err == nil {
		status.Ready = true
		status.Clients = count
	}

	return status
}

func (s *Service) CreateClient(ctx context.Context, fields clients.Fields) (*clients.Client, error) {
	store, err := s.getStore(ctx)
	if err != nil {
		return nil, err
	}
	return store.Create(ctx, fields)
}

func (s *Service) DeleteClient(ctx context.Context, id int64) error {
	store, err := s.getStore(ctx)
	if err != nil {
		return err
	}
	return store.Delete(ctx, id)
}

func (s *Service) GetClient(ctx context.Context, id int64) (*clients.Client, error) {
	store, err := s.getStore(ctx)
	if err != nil {
		return nil, err
	}
	return store.Get(ctx, id)
}

func (s *Service) FindClients(ctx context.Context, options *FindOptions, f func(client *clients.Client) bool) error {

	store, err := s.getStore(ctx)
	if err != nil {
		return err
	}

	if options == nil {
		options = &FindOptions{}
	}

	hasFilter := len(options.Filter) > 0
	skip := options.Skip
	limit := options.Limit

	for client, err := range store.Search(ctx, options.Query) {
		if err != nil {
			return err
		}

		if hasFilter {
			data, err := utils.RemarshalMap(client)
			if err != nil {
				return err
			}
			match, err := connor.Match(options.Filter, data)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidFilter, err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		if !f(client) {
			return nil
		}

		if limit > 0 {
			limit--
			if limit == 0 {
				return nil
			}
		}
	}

	return nil
}

func (s *Service) FindByPhoneNumber(ctx context.Context, phoneNumber string) ([]*clients.Client, error) {
	store, err := s.getStore(ctx)
	if err != nil {
		return nil, err
	}
	return store.FindByPhoneNumber(ctx, phoneNumber)
}

// ResetStorage deletes every client. The storage stays unavailable until
// Reload is called.
func (s *Service) ResetStorage(ctx context.Context) error {
	store, err := s.getStore(ctx)
	if err != nil {
		return err
	}
	return store.Reset(ctx)
}

// Reload initializes the store again, recreating the collection if it was
// reset.
func (s *Service) Reload(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	store, err := clients.Initialize(ctx, s.db)
	if err != nil {
		return err
	}
	s.store = store

	return nil
}
