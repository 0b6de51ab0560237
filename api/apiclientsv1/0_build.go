package apiclientsv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/clientsdb/service"
)

func BuildV1Clients(v1 *box.R, s service.Servicer) *box.R {

	clients := v1.Resource("/clients").
		WithActions(
			box.Get(listClients).WithName("listClients"),
			box.Post(createClient).WithName("createClient"),
			box.ActionPost(find).WithName("find"),
			box.ActionPost(findByPhoneNumber).WithName("findByPhoneNumber"),
			box.Action(random).WithName("random"),
		)

	v1.Resource("/clients/{clientId}").
		WithActions(
			box.Get(getClient).WithName("getClient"),
			box.Delete(deleteClient).WithName("deleteClient"),
		)

	v1.Resource("/storage").
		WithActions(
			box.Get(getStorage).WithName("getStorage"),
			box.ActionPost(reset).WithName("reset"),
			box.ActionPost(reload).WithName("reload"),
		)

	return clients
}
