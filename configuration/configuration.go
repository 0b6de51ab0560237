package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	Dir               string `usage:"data directory"`
	Engine            string `usage:"storage engine [json|sqlite]"`
	Statics           string `usage:"statics directory, embedded page when empty"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	LogLevel          string `usage:"log level [debug|info|warn|error]"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          ":8080",
		Dir:               "data",
		Engine:            "json",
		Statics:           "",
		EnableCompression: true,
		LogLevel:          "info",
		ShowBanner:        true,
		ShowConfig:        false,
	}
}
