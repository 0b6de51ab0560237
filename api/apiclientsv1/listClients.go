package apiclientsv1

import (
	"context"
	"net/http"

	"github.com/fulldump/clientsdb/service"
)

// listClients writes every client matching the optional phrase query ?q=
func listClients(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	s := GetServicer(ctx)
	cw := newClientWriter(w)

	return s.FindClients(ctx, &service.FindOptions{
		Query: r.URL.Query().Get("q"),
	}, cw.write)
}
