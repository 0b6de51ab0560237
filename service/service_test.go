package service

import (
	"context"
	"errors"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/fulldump/clientsdb/clients"
	"github.com/fulldump/clientsdb/database"
)

func newTestService(t *testing.T) *Service {
	db := database.NewDatabase(&database.Config{
		Dir: t.TempDir(),
	})
	AssertNil(db.Load())
	t.Cleanup(func() { db.Stop() })
	return NewService(db)
}

func collect(s *Service, options *FindOptions) ([]string, error) {
	names := []string{}
	err := s.FindClients(context.Background(), options, func(client *clients.Client) bool {
		names = append(names, client.FirstName)
		return true
	})
	return names, err
}

func TestService_FindClients(t *testing.T) {

	ctx := context.Background()
	s := newTestService(t)

	for _, fields := range []clients.Fields{
		{FirstName: "Anna", Address: "Kraków", Business: true},
		{FirstName: "Adam", Address: "Gdańsk"},
		{FirstName: "Ewa", Address: "Kraków"},
		{FirstName: "Olga", Address: "Kraków", Business: true},
	} {
		_, err := s.CreateClient(ctx, fields)
		AssertNil(err)
	}

	Alternative("all", func(a *A) {
		names, err := collect(s, nil)
		AssertNil(err)
		AssertEqual(names, []string{"Anna", "Adam", "Ewa", "Olga"})
	})

	Alternative("query", func(a *A) {
		names, err := collect(s, &FindOptions{Query: "kraków"})
		AssertNil(err)
		AssertEqual(names, []string{"Anna", "Ewa", "Olga"})
	})

	Alternative("query and filter", func(a *A) {
		names, err := collect(s, &FindOptions{
			Query:  "kraków",
			Filter: map[string]any{"business": true},
		})
		AssertNil(err)
		AssertEqual(names, []string{"Anna", "Olga"})
	})

	Alternative("skip and limit", func(a *A) {
		names, err := collect(s, &FindOptions{Skip: 1, Limit: 2})
		AssertNil(err)
		AssertEqual(names, []string{"Adam", "Ewa"})
	})
}

func TestService_ResetAndReload(t *testing.T) {

	ctx := context.Background()
	s := newTestService(t)

	_, err := s.CreateClient(ctx, clients.Fields{FirstName: "Jan"})
	AssertNil(err)
	AssertEqual(s.Status(ctx).Clients, 1)

	AssertNil(s.ResetStorage(ctx))

	status := s.Status(ctx)
	AssertTrue(status.Reset)
	AssertFalse(status.Ready)

	_, err = s.CreateClient(ctx, clients.Fields{FirstName: "Eva"})
	AssertTrue(errors.Is(err, clients.ErrStorageUnavailable))

	AssertNil(s.Reload(ctx))

	status = s.Status(ctx)
	AssertFalse(status.Reset)
	AssertTrue(status.Ready)
	AssertEqual(status.Clients, 0)

	client, err := s.CreateClient(ctx, clients.Fields{FirstName: "Eva"})
	AssertNil(err)
	AssertEqual(client.ID, int64(1))
}

func TestService_Unavailable(t *testing.T) {

	db := database.NewDatabase(&database.Config{
		Dir: t.TempDir(),
	})
	s := NewService(db)

	_, err := s.GetClient(context.Background(), 1)
	AssertTrue(errors.Is(err, clients.ErrStorageUnavailable))
	AssertEqual(s.Status(context.Background()).Status, database.StatusOpening)
}

func TestCropTabs(t *testing.T) {
	AssertEqual(cropTabs("\n\t\tone\n\t\t\ttwo\n\t"), "\none\n\ttwo\n\t")
	AssertEqual(cropTabs("plain"), "plain")
}
