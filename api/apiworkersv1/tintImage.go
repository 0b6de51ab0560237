package apiworkersv1

import (
	"fmt"

	"github.com/fulldump/clientsdb/clients"
	"github.com/fulldump/clientsdb/workers"
)

// tintImageRequest carries the image and either an explicit color or the
// client fields to compute it from.
type tintImageRequest struct {
	Image  string         `json:"image"`
	Color  *workers.RGB   `json:"color"`
	Fields clients.Fields `json:"fields"`
}

type tintImageResponse struct {
	Image string        `json:"image"`
	Color *TintResponse `json:"color"`
}

func tintImage(input *tintImageRequest) (*tintImageResponse, error) {

	color := workers.Tint(input.Fields)
	if input.Color != nil {
		color = *input.Color
	}

	image, err := workers.TintImage(input.Image, color)
	if err != nil {
		return nil, fmt.Errorf("tint image: %w", err)
	}

	return &tintImageResponse{
		Image: image,
		Color: newTintResponse(color),
	}, nil
}
