package main

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// Remove deletes clients 1 to c.N. Missing ids are fine, delete is
// idempotent.
func Remove(c Config) error {

	if c.Base == "" {
		err := CreateServer(&c)
		if err != nil {
			return err
		}
		// something to remove
		err = Create(c)
		if err != nil {
			return err
		}
	}

	next := int64(0)
	items := c.N
	var failed int64

	done := make(chan struct{})
	defer close(done)
	go progress(done, &items)

	mutex := &sync.Mutex{}
	var lastErr error

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for {
			id := atomic.AddInt64(&next, 1)
			if id > c.N {
				return
			}
			atomic.AddInt64(&items, -1)

			status, err := doJSON("DELETE", c.Base+"/v1/clients/"+strconv.FormatInt(id, 10), nil, nil)
			if err == nil && status != http.StatusNoContent {
				err = fmt.Errorf("unexpected status %d", status)
			}
			if err != nil {
				atomic.AddInt64(&failed, 1)
				mutex.Lock()
				lastErr = err
				mutex.Unlock()
			}
		}
	})

	report(c.N, failed, time.Since(t0))

	return lastErr
}
