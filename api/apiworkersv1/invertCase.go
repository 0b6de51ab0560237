package apiworkersv1

import (
	"github.com/fulldump/clientsdb/clients"
	"github.com/fulldump/clientsdb/workers"
)

func invertCase(input *clients.Fields) clients.Fields {
	return workers.InvertCase(*input)
}
