package config

type Config struct {
	Global   GlobalConfig   `toml:"global"`
	Log      LogConfig      `toml:"log"`
	Sentry   SentryConfig   `toml:"sentry"`
	Servers  ServersConfig  `toml:"servers"`
	Archives ArchivesConfig `toml:"archives"`
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type SentryConfig struct {
	Dsn string `toml:"dsn" validate:"omitempty,url"`
}

type ServersConfig struct {
	Download DownloadServerConfig `toml:"download"`
	Debug    DebugServerConfig    `toml:"debug"`
}

type DownloadServerConfig struct {
	Addr string `toml:"addr" validate:"required,hostname_port"`
}

type DebugServerConfig struct {
	Addr string `toml:"addr" validate:"required,hostname_port"`
}

type ArchivesConfig struct {
	// Dir is the served directory. Empty means the directory of the executable.
	Dir   string              `toml:"dir"`
	Title string              `toml:"title" validate:"required"`
	Files []ArchiveFileConfig `toml:"files" validate:"required,min=1,dive"`
}

type ArchiveFileConfig struct {
	Name  string `toml:"name" validate:"required"`
	Title string `toml:"title" validate:"required"`
	Note  string `toml:"note"`
}
