package apiclientsv1

import (
	"context"

	"github.com/fulldump/clientsdb/clients"
)

func getClient(ctx context.Context) (*clients.Client, error) {

	id, err := getClientID(ctx)
	if err != nil {
		return nil, err
	}

	return GetServicer(ctx).GetClient(ctx, id)
}
