package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/clientsdb/logging"
)

type Config struct {
	Mode     string `usage:"what to do: CREATE | REMOVE"`
	Base     string `usage:"base URL, an embedded server is started when empty"`
	N        int64  `usage:"number of clients"`
	Workers  int    `usage:"number of workers"`
	Seed     uint64 `usage:"random seed, 0 picks one"`
	LogLevel string `usage:"log level [debug|info|warn|error]"`
}

var cleanups []func()

func main() {

	c := Config{
		Mode:     "create",
		Base:     "",
		N:        1_000,
		Workers:  8,
		LogLevel: "info",
	}
	goconfig.Read(&c)

	logger, err := logging.New(c.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		os.Exit(2)
	}
	slog.SetDefault(logger)

	err = run(c)

	for _, cleanup := range cleanups {
		cleanup()
	}

	if err != nil {
		logger.Error("seed", "mode", c.Mode, "err", err)
		os.Exit(1)
	}
}

func run(c Config) error {
	switch strings.ToUpper(c.Mode) {
	case "CREATE":
		return Create(c)
	case "REMOVE":
		return Remove(c)
	}
	return fmt.Errorf("unknown mode '%s', must be [CREATE|REMOVE]", c.Mode)
}
