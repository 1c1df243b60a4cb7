package kv

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config locates the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the store path from a .pup config file or PUP_*
// environment variables.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.pup.db")
	viper.SetConfigName(".pup") // .yaml is implicit
	viper.SetEnvPrefix("PUP")
	viper.AutomaticEnv()

	if override := os.Getenv("PUP_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{Path: viper.GetString("path")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
