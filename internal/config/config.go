// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Значения по умолчанию
const (
	DefaultCatalogPath   = "input.txt"
	DefaultTickInterval  = 100 * time.Millisecond
	DefaultPresignExpiry = 15 * time.Minute
)

// Config структура для хранения конфигурации приложения
type Config struct {
	CatalogPath   string        `yaml:"catalog_path"`
	TickInterval  time.Duration `yaml:"tick_interval"`
	LogFile       string        `yaml:"log_file"`
	AwsAccessKey  string        `yaml:"aws_access_key"`
	AwsSecretKey  string        `yaml:"aws_secret_key"`
	AwsRegion     string        `yaml:"aws_region"`
	AwsEndpoint   string        `yaml:"aws_endpoint"`
	PresignExpiry time.Duration `yaml:"presign_expiry"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		CatalogPath:   DefaultCatalogPath,
		TickInterval:  DefaultTickInterval,
		PresignExpiry: DefaultPresignExpiry,
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращается конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Устанавливаем значения по умолчанию, если они не заданы
	if config.CatalogPath == "" {
		config.CatalogPath = DefaultCatalogPath
	}
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.PresignExpiry <= 0 {
		config.PresignExpiry = DefaultPresignExpiry
	}

	// Раскрываем тильду в путях
	if config.CatalogPath, err = ExpandHome(config.CatalogPath); err != nil {
		return nil, err
	}
	if config.LogFile, err = ExpandHome(config.LogFile); err != nil {
		return nil, err
	}

	return config, nil
}

// HasS3 сообщает, заданы ли настройки доступа к S3
func (c *Config) HasS3() bool {
	return c.AwsAccessKey != "" && c.AwsSecretKey != "" && c.AwsRegion != ""
}

// ExpandHome заменяет ведущую тильду на домашний каталог пользователя
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
