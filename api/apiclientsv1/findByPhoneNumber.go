package apiclientsv1

import (
	"context"

	"github.com/fulldump/clientsdb/clients"
)

type findByPhoneNumberRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

func findByPhoneNumber(ctx context.Context, input *findByPhoneNumberRequest) ([]*clients.Client, error) {
	return GetServicer(ctx).FindByPhoneNumber(ctx, input.PhoneNumber)
}
