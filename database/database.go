package database

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fulldump/clientsdb/collection"
	"github.com/fulldump/clientsdb/utils"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

const (
	EngineJSON   = "json"
	EngineSQLite = "sqlite"
)

type Config struct {
	Dir    string
	Engine string // json | sqlite
}

type Database struct {
	Config      *Config
	Logger      *slog.Logger
	status      string
	Collections map[string]*collection.Collection
	mutex       *sync.RWMutex
	exit        chan struct{}
	stopOnce    sync.Once
}

func NewDatabase(config *Config) *Database {
	if config.Engine == "" {
		config.Engine = EngineJSON
	}

	s := &Database{
		Config:      config,
		Logger:      slog.Default(),
		status:      StatusOpening,
		Collections: map[string]*collection.Collection{},
		mutex:       &sync.RWMutex{},
		exit:        make(chan struct{}),
	}

	return s
}

func (db *Database) GetStatus() string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	return db.status
}

func (db *Database) setStatus(status string) {
	db.mutex.Lock()
	db.status = status
	db.mutex.Unlock()
}

func (db *Database) extension() string {
	if db.Config.Engine == EngineSQLite {
		return ".sqlite"
	}
	return ".jsonl"
}

func (db *Database) filename(name string) string {
	return filepath.Join(db.Config.Dir, name+db.extension())
}

var engines = map[string]func(filename string) (collection.Storage, error){
	EngineJSON: func(filename string) (collection.Storage, error) {
		return collection.NewJSONStorage(filename)
	},
	EngineSQLite: func(filename string) (collection.Storage, error) {
		return collection.NewSQLiteStorage(filename)
	},
}

func (db *Database) newStorage(filename string) (collection.Storage, error) {
	newStorage, exists := engines[db.Config.Engine]
	if !exists {
		return nil, fmt.Errorf("unknown engine '%s', must be [%s]", db.Config.Engine, strings.Join(utils.GetKeys(engines), "|"))
	}
	return newStorage(filename)
}

func (db *Database) openCollection(filename string) (*collection.Collection, error) {

	storage, err := db.newStorage(filename)
	if err != nil {
		return nil, err
	}

	col, err := collection.OpenCollection(storage)
	if err != nil {
		storage.Close()
		return nil, err
	}

	return col, nil
}

// OpenCollection returns the collection called name, creating it if absent.
func (db *Database) OpenCollection(name string) (*collection.Collection, error) {

	db.mutex.Lock()
	defer db.mutex.Unlock()

	if db.status == StatusClosing {
		return nil, fmt.Errorf("database is closing")
	}

	col, exists := db.Collections[name]
	if exists {
		return col, nil
	}

	err := os.MkdirAll(db.Config.Dir, 0755)
	if err != nil {
		return nil, err
	}

	col, err = db.openCollection(db.filename(name))
	if err != nil {
		return nil, fmt.Errorf("open collection '%s': %w", name, err)
	}

	db.Collections[name] = col

	return col, nil
}

func (db *Database) GetCollection(name string) (*collection.Collection, bool) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	col, exists := db.Collections[name]
	return col, exists
}

// DropCollection closes the collection and deletes its storage. It cannot be
// undone.
func (db *Database) DropCollection(name string) error {

	db.mutex.Lock()
	defer db.mutex.Unlock()

	col, exists := db.Collections[name]
	if !exists {
		return fmt.Errorf("collection '%s' not found", name)
	}

	delete(db.Collections, name)

	return col.Drop()
}

func (db *Database) Load() error {

	dir := db.Config.Dir
	db.Logger.Info("loading database", "dir", dir, "engine", db.Config.Engine)

	err := os.MkdirAll(dir, 0755)
	if err != nil {
		db.setStatus(StatusClosing)
		return err
	}

	ext := db.extension()
	err = filepath.WalkDir(dir, func(filename string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(filename) != ext {
			return nil
		}

		// WalkDir yields cleaned paths, dir may not be
		rel, err := filepath.Rel(dir, filename)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.ToSlash(rel), ext)

		t0 := time.Now()
		col, err := db.openCollection(filename)
		if err != nil {
			db.Logger.Error("open collection", "filename", filename, "err", err)
			return err
		}
		db.Logger.Info("collection loaded", "name", name, "rows", col.Len(), "took", time.Since(t0))

		db.mutex.Lock()
		db.Collections[name] = col
		db.mutex.Unlock()

		return nil
	})

	if err != nil {
		db.setStatus(StatusClosing)
		return err
	}

	db.setStatus(StatusOperating)

	return nil
}

func (db *Database) Start() error {

	err := db.Load()
	if err != nil {
		return err
	}

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	var lastErr error
	db.stopOnce.Do(func() {
		defer close(db.exit)

		db.setStatus(StatusClosing)

		db.mutex.Lock()
		defer db.mutex.Unlock()

		for name, col := range db.Collections {
			db.Logger.Info("closing collection", "name", name)
			err := col.Close()
			if err != nil {
				db.Logger.Error("close collection", "name", name, "err", err)
				lastErr = err
			}
		}
	})

	return lastErr
}
