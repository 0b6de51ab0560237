package api

import (
	"context"

	"github.com/fulldump/box"

	"github.com/fulldump/clientsdb/api/apiclientsv1"
	"github.com/fulldump/clientsdb/api/apiworkersv1"
	"github.com/fulldump/clientsdb/service"
	"github.com/fulldump/clientsdb/statics"
)

func Build(s service.Servicer, staticsDir, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		injectServicer(s),
	)

	apiclientsv1.BuildV1Clients(v1, s)
	apiworkersv1.BuildV1Workers(v1)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}).WithName("release"))

	// Mount statics
	b.Resource("/*").
		WithActions(
			box.Get(statics.ServeStatics(staticsDir)).WithName("serveStatics"),
		)

	return b
}

func injectServicer(s service.Servicer) box.I {
	return func(next box.H) box.H {
		return func(ctx context.Context) {
			next(apiclientsv1.SetServicer(ctx, s))
		}
	}
}
