// Package config carga la configuración de la aplicación con viper:
// defaults -> archivo YAML opcional -> variables de entorno PETTRACKR_*.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"pettrackr/internal/pricing"
)

type Config struct {
	// Addr es la dirección de escucha del servidor HTTP.
	Addr string `mapstructure:"addr"`

	// DataDir es la raíz de datos: ahí viven los archivos .db y pet_images/.
	// Vacío = repos in-memory (modo dev, sin persistencia).
	DataDir string `mapstructure:"data_dir"`

	Logging Logging `mapstructure:"logging"`
	Pricing Pricing `mapstructure:"pricing"`
}

type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Pricing agrupa los catálogos de precios. Viven en configuración para
// poder ajustarlos sin tocar código.
type Pricing struct {
	Daycare  pricing.DaycareRates   `mapstructure:"daycare"`
	Grooming pricing.GroomTariff    `mapstructure:"grooming"`
	Vaccines pricing.VaccineCatalog `mapstructure:"vaccines"`
}

func Defaults() Config {
	return Config{
		Addr:    ":8080",
		DataDir: "",
		Logging: Logging{Level: "info", Format: "text"},
		Pricing: Pricing{
			Daycare:  pricing.DefaultDaycareRates(),
			Grooming: pricing.DefaultGroomTariff(),
			Vaccines: pricing.DefaultVaccineCatalog(),
		},
	}
}

// Load lee la configuración. path vacío = ./pettrackr.yaml si existe,
// si no defaults + env.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix("PETTRACKR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// defaults primero, para que AutomaticEnv conozca las keys
	def := Defaults()
	v.SetDefault("addr", def.Addr)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("pricing.daycare.base_per_day", def.Pricing.Daycare.BasePerDay)
	v.SetDefault("pricing.daycare.feed_once", def.Pricing.Daycare.FeedOnce)
	v.SetDefault("pricing.daycare.feed_twice", def.Pricing.Daycare.FeedTwice)
	v.SetDefault("pricing.daycare.feed_thrice", def.Pricing.Daycare.FeedThrice)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	} else {
		v.SetConfigFile("pettrackr.yaml")
		// sin archivo no es error: defaults + env alcanzan
		_ = v.ReadInConfig()
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	// los catálogos map no se mergean con defaults al unmarshalear:
	// si el archivo no los trae, quedan los de fábrica
	if len(cfg.Pricing.Grooming) == 0 {
		cfg.Pricing.Grooming = pricing.DefaultGroomTariff()
	}
	if len(cfg.Pricing.Vaccines) == 0 {
		cfg.Pricing.Vaccines = pricing.DefaultVaccineCatalog()
	}

	if cfg.DataDir != "" {
		abs, err := filepath.Abs(cfg.DataDir)
		if err != nil {
			return Config{}, fmt.Errorf("config: data_dir: %w", err)
		}
		cfg.DataDir = abs
	}

	return cfg, nil
}
