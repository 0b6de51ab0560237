package apiclientsv1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fulldump/box"

	"github.com/fulldump/clientsdb/clients"
)

var ErrInvalidClientID = errors.New("invalid client id")

func getClientID(ctx context.Context) (int64, error) {
	value := strings.TrimSpace(box.GetUrlParameter(ctx, "clientId"))
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidClientID, value)
	}
	return id, nil
}

// clientWriter streams clients as JSON lines.
type clientWriter struct {
	w       http.ResponseWriter
	e       *json.Encoder
	written int
}

func newClientWriter(w http.ResponseWriter) *clientWriter {
	w.Header().Set("Content-Type", "application/x-ndjson")
	return &clientWriter{
		w: w,
		e: json.NewEncoder(w),
	}
}

func (c *clientWriter) write(client *clients.Client) bool {
	err := c.e.Encode(client)
	if err != nil {
		return false
	}
	c.written++
	return true
}
