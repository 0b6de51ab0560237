package collection

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// JSONStorage is an append only file with one JSON command per line.
type JSONStorage struct {
	Filename string
	Sync     bool // fsync after every command

	mutex  sync.Mutex
	file   *os.File
	buffer *bufio.Writer
	size   int64 // end of the last complete command
}

func NewJSONStorage(filename string) (*JSONStorage, error) {

	// Open file for append only
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		return nil, fmt.Errorf("open file for write: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return &JSONStorage{
		Filename: filename,
		file:     file,
		buffer:   bufio.NewWriterSize(file, 64*1024),
		size:     info.Size(),
	}, nil
}

func (s *JSONStorage) Persist(command *Command) error {

	line, err := json.Marshal(command)
	if err != nil {
		return fmt.Errorf("json encode command: %w", err)
	}
	line = append(line, '\n')

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.file == nil {
		return ErrStorageClosed
	}

	_, err = s.buffer.Write(line)
	if err == nil {
		err = s.buffer.Flush()
	}
	if err != nil {
		return s.discard(fmt.Errorf("write command: %w", err))
	}

	if s.Sync {
		err = s.file.Sync()
		if err != nil {
			return s.discard(fmt.Errorf("sync: %w", err))
		}
	}

	s.size += int64(len(line))

	return nil
}

// discard drops whatever part of a failed command reached the buffer or the
// file, so the log ends on a complete line and later writes can succeed.
func (s *JSONStorage) discard(cause error) error {
	s.buffer.Reset(s.file)
	err := s.file.Truncate(s.size)
	if err != nil {
		return errors.Join(cause, fmt.Errorf("truncate: %w", err))
	}
	return cause
}

func (s *JSONStorage) Load(f func(command *Command) error) error {

	file, err := os.Open(s.Filename)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open file for read: %w", err)
	}
	defer file.Close()

	decoder := jsontext.NewDecoder(bufio.NewReader(file))
	for {
		value, err := decoder.ReadValue()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode json: %w", err)
		}

		command := &Command{}
		err = json.Unmarshal(value, command)
		if err != nil {
			return fmt.Errorf("decode command: %w", err)
		}

		err = f(command)
		if err != nil {
			return err
		}
	}
}

func (s *JSONStorage) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.file == nil {
		return nil
	}

	flushErr := s.buffer.Flush()
	err := s.file.Close()
	s.file = nil
	if flushErr != nil {
		return flushErr
	}
	return err
}

func (s *JSONStorage) Drop() error {
	err := s.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	err = os.Remove(s.Filename)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove: %w", err)
	}

	return nil
}
