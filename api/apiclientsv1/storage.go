package apiclientsv1

import (
	"context"

	"github.com/fulldump/clientsdb/service"
)

func getStorage(ctx context.Context) *service.Status {
	return GetServicer(ctx).Status(ctx)
}

// reset deletes all clients. Storage answers 503 until reload.
func reset(ctx context.Context) (*service.Status, error) {
	s := GetServicer(ctx)
	err := s.ResetStorage(ctx)
	if err != nil {
		return nil, err
	}
	return s.Status(ctx), nil
}

func reload(ctx context.Context) (*service.Status, error) {
	s := GetServicer(ctx)
	err := s.Reload(ctx)
	if err != nil {
		return nil, err
	}
	return s.Status(ctx), nil
}
