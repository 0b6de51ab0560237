package collection

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/uuid"
)

const (
	CommandInsert    = "insert"
	CommandRemove    = "remove"
	CommandIndex     = "index"
	CommandDropIndex = "drop_index"
)

type Command struct {
	Name      string         `json:"name"`
	Uuid      string         `json:"uuid"`
	Timestamp int64          `json:"timestamp"`
	StartByte int64          `json:"start_byte"`
	Payload   jsontext.Value `json:"payload"`
}

type RemoveCommand struct {
	I int64 `json:"i"`
}

type CreateIndexCommand struct {
	Name    string        `json:"name"`
	Options *IndexOptions `json:"options"`
}

type DropIndexCommand struct {
	Name string `json:"name"`
}

func newCommand(name string, payload interface{}) (*Command, error) {

	var raw []byte
	switch p := payload.(type) {
	case []byte:
		raw = p
	default:
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("json encode payload: %w", err)
		}
	}

	return &Command{
		Name:      name,
		Uuid:      uuid.New().String(),
		Timestamp: time.Now().UnixNano(),
		StartByte: 0,
		Payload:   raw,
	}, nil
}
