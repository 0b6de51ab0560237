package collection

import "errors"

var ErrStorageClosed = errors.New("storage closed")

// Storage persists the command log of a collection.
// Persist must return only after the command is durable enough to be
// replayed by Load.
type Storage interface {
	Persist(command *Command) error
	Load(f func(command *Command) error) error
	Close() error
	Drop() error
}
