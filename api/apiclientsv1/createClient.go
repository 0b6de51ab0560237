package apiclientsv1

import (
	"context"
	"net/http"

	"github.com/fulldump/clientsdb/clients"
)

func createClient(ctx context.Context, w http.ResponseWriter, input *clients.Fields) (*clients.Client, error) {

	s := GetServicer(ctx)

	client, err := s.CreateClient(ctx, *input)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return client, nil
}
