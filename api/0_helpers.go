package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/clientsdb/api/apiclientsv1"
	"github.com/fulldump/clientsdb/clients"
	"github.com/fulldump/clientsdb/service"
	"github.com/fulldump/clientsdb/workers"
)

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

var badRequestErrors = []error{
	apiclientsv1.ErrInvalidClientID,
	service.ErrInvalidFilter,
	workers.ErrInvalidDataURL,
}

// describeError maps err to an HTTP status code and a human description.
func describeError(ctx context.Context, err error) (int, string) {

	if errors.Is(err, box.ErrResourceNotFound) {
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())
	}

	if errors.Is(err, box.ErrMethodNotAllowed) {
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
	}

	if errors.Is(err, clients.ErrStorageUnavailable) {
		return http.StatusServiceUnavailable, "Storage is not available"
	}

	if errors.Is(err, clients.ErrNotFound) {
		return http.StatusNotFound, "Client not found"
	}

	if errors.Is(err, clients.ErrWriteFailed) {
		return http.StatusInternalServerError, "Could not write to storage"
	}

	var syntaxError *json.SyntaxError
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &syntaxError) || errors.As(err, &typeError) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, "Malformed JSON"
	}

	for _, e := range badRequestErrors {
		if errors.Is(err, e) {
			return http.StatusBadRequest, "Bad request"
		}
	}

	return http.StatusInternalServerError, "Unexpected error"
}
