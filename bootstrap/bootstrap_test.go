package bootstrap

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"
	"time"

	. "github.com/fulldump/biff"

	"github.com/fulldump/clientsdb/configuration"
	"github.com/fulldump/clientsdb/logging"
)

func TestBootstrap(t *testing.T) {

	c := configuration.Default()
	c.HttpAddr = "127.0.0.1:0"
	c.Dir = t.TempDir()

	logs := &bytes.Buffer{}
	s, err := Bootstrap(&c, logging.NewWithWriter(logs, slog.LevelInfo, true))
	AssertNil(err)

	result := make(chan error, 1)
	go func() {
		result <- s.Start()
	}()

	base := "http://" + s.Addr
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get(base + "/v1/storage")
		if err == nil && resp.StatusCode == http.StatusOK {
			break
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(20 * time.Millisecond)
	}
	AssertNil(err)
	AssertEqual(resp.StatusCode, http.StatusOK)
	resp.Body.Close()

	s.Stop()

	select {
	case err := <-result:
		AssertNil(err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestBootstrap_ListenError(t *testing.T) {

	c := configuration.Default()
	c.HttpAddr = "256.0.0.1:http"
	c.Dir = t.TempDir()

	_, err := Bootstrap(&c, slog.Default())
	AssertNotNil(err)
}
