package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/fulldump/clientsdb/bootstrap"
	"github.com/fulldump/clientsdb/configuration"
)

var httpClient = &http.Client{
	Transport: &http.Transport{
		MaxConnsPerHost:     256,
		MaxIdleConnsPerHost: 256,
		MaxIdleConns:        256,
	},
}

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

// CreateServer starts an embedded server on a temporary directory and
// points c.Base to it.
func CreateServer(c *Config) error {

	dir, err := os.MkdirTemp("", "clientsdb_seed_*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	cleanups = append(cleanups, func() {
		os.RemoveAll(dir)
	})

	conf := configuration.Default()
	conf.Dir = dir
	conf.HttpAddr = "127.0.0.1:0"
	conf.EnableCompression = false

	s, err := bootstrap.Bootstrap(&conf, slog.New(slog.DiscardHandler))
	if err != nil {
		return err
	}
	go s.Start()
	cleanups = append(cleanups, s.Stop)

	c.Base = "http://" + s.Addr

	return waitReady(c.Base)
}

func waitReady(base string) error {
	var lastErr error
	for i := 0; i < 100; i++ {
		resp, err := httpClient.Get(base + "/v1/storage")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
			err = fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		lastErr = err
		sleep()
	}
	return fmt.Errorf("server not ready: %w", lastErr)
}

func doJSON(method, url string, body any, out any) (int, error) {

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return 0, err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
}
