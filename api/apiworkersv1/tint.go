package apiworkersv1

import (
	"github.com/fulldump/clientsdb/clients"
	"github.com/fulldump/clientsdb/workers"
)

type TintResponse struct {
	workers.RGB
	CSS string `json:"css"`
}

func newTintResponse(c workers.RGB) *TintResponse {
	return &TintResponse{
		RGB: c,
		CSS: c.String(),
	}
}

func tint(input *clients.Fields) *TintResponse {
	return newTintResponse(workers.Tint(*input))
}
