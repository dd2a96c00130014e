package config

import (
	"os"
	"strings"

	"parkour_scoreboard/logging"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Data  DataConfig
	Build BuildConfig
	Board BoardConfig
	Serve ServeConfig

	SentryDSN string
	Debug     bool
}

type DataConfig struct {
	Dir   string
	Links string
}

type BuildConfig struct {
	Output string
	Assets string
	Base   string
}

type BoardConfig struct {
	FallbackToCode bool
	UnknownImage   bool
}

type ServeConfig struct {
	Listen string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.links", "routes")
	v.SetDefault("build.output", "./public")
	v.SetDefault("build.assets", "./assets")
	v.SetDefault("build.base", "/")
	v.SetDefault("board.fallback_to_code", false)
	v.SetDefault("board.unknown_image", true)
	v.SetDefault("serve.listen", "127.0.0.1:5555")
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("debug", false)
}

// Load reads .env, then scoreboard.yaml from the working directory when it
// exists, then SCOREBOARD_* environment variables.
func Load() (*Config, error) {
	godotenv.Load(".env")

	v := viper.New()
	v.SetConfigName("scoreboard")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.SetEnvPrefix("SCOREBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading scoreboard.yaml")
		}
		logging.Log.Debug("no scoreboard.yaml found, using defaults and environment")
	}

	return read(v), nil
}

func read(v *viper.Viper) *Config {
	conf := &Config{
		Data: DataConfig{
			Dir:   v.GetString("data.dir"),
			Links: v.GetString("data.links"),
		},
		Build: BuildConfig{
			Output: v.GetString("build.output"),
			Assets: v.GetString("build.assets"),
			Base:   v.GetString("build.base"),
		},
		Board: BoardConfig{
			FallbackToCode: v.GetBool("board.fallback_to_code"),
			UnknownImage:   v.GetBool("board.unknown_image"),
		},
		Serve: ServeConfig{
			Listen: v.GetString("serve.listen"),
		},
		SentryDSN: v.GetString("sentry.dsn"),
		Debug:     v.GetBool("debug"),
	}

	if conf.SentryDSN == "" {
		conf.SentryDSN = os.Getenv("SENTRY_DSN")
	}
	if !strings.HasSuffix(conf.Build.Base, "/") {
		conf.Build.Base += "/"
	}

	return conf
}
