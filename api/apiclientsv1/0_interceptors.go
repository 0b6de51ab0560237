package apiclientsv1

import (
	"context"

	"github.com/fulldump/clientsdb/service"
)

const ContextServicerKey = "2f6c1e3a-8b7d-11ef-a4c2-3f9d0b7e6a15"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer)
}
