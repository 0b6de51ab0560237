package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/clientsdb/bootstrap"
	"github.com/fulldump/clientsdb/configuration"
	"github.com/fulldump/clientsdb/logging"
)

var banner = `
      _ _            _         _ _
  ___| (_) ___ _ __ | |_ ___  __| | |__
 / __| | |/ _ \ '_ \| __/ __|/ _' | '_ \
| (__| | |  __/ | | | |_\__ \ (_| | |_) |
 \___|_|_|\___|_| |_|\__|___/\__,_|_.__/
                       version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	logger, err := logging.New(c.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err.Error())
		os.Exit(2)
	}
	slog.SetDefault(logger)

	s, err := bootstrap.Bootstrap(&c, logger)
	if err != nil {
		logger.Error("bootstrap", "err", err)
		os.Exit(1)
	}

	err = s.Start()
	if err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
