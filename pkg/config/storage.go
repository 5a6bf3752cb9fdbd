package config

import "fmt"

// StorageConfig holds credentials for the remote image host, an S3-compatible
// object store. Bucket doubles as the account identifier on hosts where the
// two are the same.
type StorageConfig struct {
	Endpoint     string `koanf:"endpoint"`
	Bucket       string `koanf:"bucket"`
	Region       string `koanf:"region"`
	AccessKey    string `koanf:"accessKey"`
	AccessSecret string `koanf:"accessSecret"`
}

func (c *StorageConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("storage endpoint is not configured")
	}
	if c.Bucket == "" {
		return fmt.Errorf("storage bucket is not configured")
	}
	if c.AccessKey == "" || c.AccessSecret == "" {
		return fmt.Errorf("storage credentials are not configured")
	}
	return nil
}
