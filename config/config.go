package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	"bikeshare/domain/business/paginator"
	"bikeshare/utils"
)

const (
	defaultConfigFilepath = "./config/config.yaml"
	defaultTimeLayout     = "2006-01-02 15:04:05"
	defaultLogLevel       = "info"

	configPathEnv = "BIKESHARE_CONFIG"
	logLevelEnv   = "LOG_LEVEL"
	rabbitURLEnv  = "RABBIT_URL"
)

// CityConfig maps a city to its source files
// + Name: lower-cased name used in prompts, e.g. new york city
// + File: trips CSV, relative to DataConfig.DataDir
// + StationsFile: optional CSV with name,latitude,longitude of each station
type CityConfig struct {
	Name         string `yaml:"name" validate:"required"`
	File         string `yaml:"file" validate:"required"`
	StationsFile string `yaml:"stations_file"`
}

// DataConfig contains everything the loader needs to read a city dataset
type DataConfig struct {
	DataDir    string       `yaml:"data_dir"`
	TimeLayout string       `yaml:"time_layout"`
	Cities     []CityConfig `yaml:"cities" validate:"required,min=1,dive"`
}

// PublisherConfig contains the RabbitMQ settings used to publish reports
type PublisherConfig struct {
	Enabled   bool                                 `yaml:"enabled"`
	RabbitURL string                               `yaml:"rabbit_url" validate:"required_if=Enabled true"`
	Queue     communication.QueueDeclarationConfig `yaml:"queue"`
}

type AppConfig struct {
	LogLevel  string          `yaml:"log_level"`
	PageSize  int             `yaml:"page_size" validate:"gte=0"`
	Data      DataConfig      `yaml:"data"`
	Publisher PublisherConfig `yaml:"publisher"`
}

// LoadConfig reads the config file pointed by BIKESHARE_CONFIG, or ./config/config.yaml
func LoadConfig() (*AppConfig, error) {
	configFilepath := os.Getenv(configPathEnv)
	if configFilepath == "" {
		configFilepath = defaultConfigFilepath
	}
	return LoadConfigFromFile(configFilepath)
}

// LoadConfigFromFile parses and validates the given config file. LOG_LEVEL and RABBIT_URL
// environment variables override the values of the file
func LoadConfigFromFile(configFilepath string) (*AppConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var appConfig AppConfig
	err = yaml.Unmarshal(configFile, &appConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if logLevel := os.Getenv(logLevelEnv); logLevel != "" {
		appConfig.LogLevel = logLevel
	}
	if rabbitURL := os.Getenv(rabbitURLEnv); rabbitURL != "" {
		appConfig.Publisher.RabbitURL = rabbitURL
	}

	appConfig.setDefaults(filepath.Dir(configFilepath))

	if err := validator.New().Struct(appConfig); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configFilepath, err)
	}

	return &appConfig, nil
}

func (ac *AppConfig) setDefaults(configDir string) {
	if ac.LogLevel == "" {
		ac.LogLevel = defaultLogLevel
	}
	if ac.PageSize == 0 {
		ac.PageSize = paginator.DefaultPageSize
	}
	if ac.Data.TimeLayout == "" {
		ac.Data.TimeLayout = defaultTimeLayout
	}
	if ac.Data.DataDir == "" {
		ac.Data.DataDir = configDir
	}
}

// GetCityNames returns the configured cities in the order of the config file
func (dc DataConfig) GetCityNames() []string {
	names := make([]string, 0, len(dc.Cities))
	for _, city := range dc.Cities {
		names = append(names, city.Name)
	}
	return names
}

// GetCity returns the config of the given city
func (dc DataConfig) GetCity(name string) (CityConfig, bool) {
	for _, city := range dc.Cities {
		if city.Name == name {
			return city, true
		}
	}
	return CityConfig{}, false
}
