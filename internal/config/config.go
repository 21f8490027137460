package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

// Storage is the configuration for the object store holding uploaded images.
type Storage struct {
	// Bucket is the name of the bucket that uploaded recipe images are
	// written to. Objects in it are made publicly readable.
	Bucket string `koanf:"bucket"`
}

// CORS is the configuration for cross-origin access to the API.
type CORS struct {
	// Origins are the origins allowed to call the API from a browser.
	Origins []string `koanf:"origins"`
}

type Config struct {
	config.Common

	// Storage is the configuration for uploaded image storage.
	Storage Storage `koanf:"storage"`

	// CORS is the configuration for cross-origin access.
	CORS CORS `koanf:"cors"`
}
