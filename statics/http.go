package statics

import (
	"embed"
	"io/fs"
	"net/http"
)

// Serve static files
//
//go:embed www/*
var www embed.FS

// ServeStatics serves staticsDir, or the embedded page when it is empty.
func ServeStatics(staticsDir string) http.HandlerFunc {
	if staticsDir == "" {
		return http.FileServer(http.FS(Embedded())).ServeHTTP
	}
	return http.FileServer(http.Dir(staticsDir)).ServeHTTP
}

func Embedded() fs.FS {
	sub, err := fs.Sub(www, "www")
	if err != nil {
		panic(err) // www is embedded, it always exists
	}
	return sub
}
