package apiworkersv1

import (
	"github.com/fulldump/box"
)

// BuildV1Workers mounts the stateless computations, they never touch the
// storage.
func BuildV1Workers(v1 *box.R) *box.R {
	return v1.Resource("/workers").
		WithActions(
			box.ActionPost(invertCase).WithName("invertCase"),
			box.ActionPost(tint).WithName("tint"),
			box.ActionPost(tintImage).WithName("tintImage"),
		)
}
