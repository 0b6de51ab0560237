package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fulldump/clientsdb/clients"
	"github.com/fulldump/clientsdb/fakeclient"
)

// Create posts c.N random clients.
func Create(c Config) error {

	if c.Base == "" {
		err := CreateServer(&c)
		if err != nil {
			return err
		}
	}

	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	slog.Info("seeding", "seed", seed, "clients", c.N, "workers", c.Workers)

	items := c.N
	var failed int64

	done := make(chan struct{})
	defer close(done)
	go progress(done, &items)

	worker := int64(0)
	mutex := &sync.Mutex{}
	var lastErr error

	t0 := time.Now()
	Parallel(c.Workers, func() {

		r := rand.New(rand.NewPCG(seed, uint64(atomic.AddInt64(&worker, 1))))

		for atomic.AddInt64(&items, -1) >= 0 {
			client := &clients.Client{}
			status, err := doJSON("POST", c.Base+"/v1/clients", fakeclient.Random(r), client)
			if err == nil && status != http.StatusCreated {
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

func progress(done chan struct{}, items *int64) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			slog.Info("progress", "pending", max(atomic.LoadInt64(items), 0))
		}
	}
}

func report(n, failed int64, took time.Duration) {
	slog.Info("done",
		"sent", n,
		"failed", failed,
		"took", took,
		"throughput", fmt.Sprintf("%.2f clients/sec", float64(n)/took.Seconds()),
	)
}

func sleep() {
	time.Sleep(20 * time.Millisecond)
}
