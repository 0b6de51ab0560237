package apiclientsv1

import (
	"context"
	"net/http"
)

// deleteClient always answers 204 for a valid id, the client may not exist.
func deleteClient(ctx context.Context, w http.ResponseWriter) error {

	id, err := getClientID(ctx)
	if err != nil {
		return err
	}

	err = GetServicer(ctx).DeleteClient(ctx, id)
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
