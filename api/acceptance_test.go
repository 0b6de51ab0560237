package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/fulldump/box"
	"github.com/klauspost/compress/gzip"

	"github.com/fulldump/clientsdb/database"
	"github.com/fulldump/clientsdb/logging"
	"github.com/fulldump/clientsdb/service"
)

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		db := database.NewDatabase(&database.Config{
			Dir: t.TempDir(),
		})

		biff.AssertNil(db.Load())
		biff.AssertEqual(db.GetStatus(), database.StatusOperating)

		s := service.NewService(db)

		b := Build(s, "", "test")
		b.WithInterceptors(
			PrettyErrorInterceptor,
			InterceptorUnavailable(db),
			RecoverFromPanic(slog.New(slog.DiscardHandler)),
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

	})
}

func TestRelease(t *testing.T) {

	db := database.NewDatabase(&database.Config{
		Dir: t.TempDir(),
	})
	biff.AssertNil(db.Load())

	b := Build(service.NewService(db), "", "v1.2.3")
	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/release").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusOK)
	biff.AssertEqual(resp.BodyJson(), "v1.2.3")
}

func TestInterceptorUnavailable(t *testing.T) {

	db := database.NewDatabase(&database.Config{
		Dir: t.TempDir(),
	})

	b := Build(service.NewService(db), "", "test")
	b.WithInterceptors(
		PrettyErrorInterceptor,
		InterceptorUnavailable(db),
	)
	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/v1/clients").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusServiceUnavailable)

	body := resp.BodyJson().(map[string]interface{})
	biff.AssertEqual(body["error"].(map[string]interface{})["description"], "Storage is not available")
}

func TestRecoverFromPanic(t *testing.T) {

	logs := &bytes.Buffer{}
	b := box.NewBox()
	b.WithInterceptors(
		PrettyErrorInterceptor,
		RecoverFromPanic(logging.NewWithWriter(logs, slog.LevelInfo, true)),
	)
	b.Resource("/panic").WithActions(
		box.Get(func() string {
			panic("boom")
		}).WithName("panic"),
	)
	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/panic").Do()
	biff.AssertEqual(resp.StatusCode, http.StatusInternalServerError)
	biff.AssertTrue(strings.Contains(resp.BodyString(), "boom"))
	biff.AssertTrue(strings.Contains(logs.String(), "panic"))
	biff.AssertTrue(strings.Contains(logs.String(), "stack="))
}

func TestCompression(t *testing.T) {

	b := box.NewBox()
	b.WithInterceptors(Compression)
	b.Resource("/hello").WithActions(
		box.Get(func() string {
			return "hello"
		}).WithName("hello"),
	)

	r := httptest.NewRequest("GET", "/hello", nil)
	r.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	box.Box2Http(b).ServeHTTP(w, r)

	biff.AssertEqual(w.Header().Get("Content-Encoding"), "gzip")

	gz, err := gzip.NewReader(w.Body)
	biff.AssertNil(err)
	body, err := io.ReadAll(gz)
	biff.AssertNil(err)
	biff.AssertEqual(strings.TrimSpace(string(body)), `"hello"`)
}
