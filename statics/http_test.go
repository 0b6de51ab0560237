package statics

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/fulldump/biff"
)

func TestServeStatics_Embedded(t *testing.T) {

	w := httptest.NewRecorder()
	ServeStatics("")(w, httptest.NewRequest(http.MethodGet, "/", nil))

	AssertEqual(w.Code, http.StatusOK)
	AssertTrue(strings.Contains(w.Body.String(), "/v1/clients"))
}

func TestServeStatics_Dir(t *testing.T) {

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hello"), 0644)
	AssertNil(err)

	w := httptest.NewRecorder()
	ServeStatics(dir)(w, httptest.NewRequest(http.MethodGet, "/hello.txt", nil))

	AssertEqual(w.Code, http.StatusOK)
	AssertEqual(w.Body.String(), "hello")
}
