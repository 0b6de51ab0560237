package apiclientsv1

import (
	"math/rand/v2"

	"github.com/fulldump/clientsdb/clients"
	"github.com/fulldump/clientsdb/fakeclient"
)

// random returns client data to fill a form, nothing is stored.
func random() clients.Fields {
	return fakeclient.Random(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}
