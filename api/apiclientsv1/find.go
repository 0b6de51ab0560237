package apiclientsv1

import (
	"context"
	"net/http"

	"github.com/fulldump/clientsdb/service"
)

func find(ctx context.Context, w http.ResponseWriter, input *service.FindOptions) error {

	s := GetServicer(ctx)
	cw := newClientWriter(w)

	return s.FindClients(ctx, input, cw.write)
}
