package service

import (
	"context"

	"github.com/fulldump/clientsdb/clients"
)

type Servicer interface {
	Status(ctx context.Context) *Status
	CreateClient(ctx context.Context, fields clients.Fields) (*clients.Client, error)
	DeleteClient(ctx context.Context, id int64) error
	GetClient(ctx context.Context, id int64) (*clients.Client, error)
	FindClients(ctx context.Context, options *FindOptions, f func(client *clients.Client) bool) error
	FindByPhoneNumber(ctx context.Context, phoneNumber string) ([]*clients.Client, error)
	ResetStorage(ctx context.Context) error
	Reload(ctx context.Context) error
}

type Status struct {
	Status  string `json:"status"`
	Engine  string `json:"engine"`
	Ready   bool   `json:"ready"`
	Reset   bool   `json:"reset"`
	Clients int    `json:"clients"`
}

// FindOptions selects clients matching the phrase Query and the mongo like
// Filter. Limit zero means no limit.
type FindOptions struct {
	Query  string         `json:"query"`
	Filter map[string]any `json:"filter"`
	Skip   int64          `json:"skip"`
	Limit  int64          `json:"limit"`
}
