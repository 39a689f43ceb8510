package config

// StorageConfig locates the on-disk key-value data directory.
type StorageConfig struct {
	DataDir string `yaml:"dataDir" validate:"required"`
}

// MapsConfig configures the geocoding and directions collaborators.
type MapsConfig struct {
	APIKey            string `yaml:"apiKey"`
	GeocodeURL        string `yaml:"geocodeURL" validate:"omitempty,url"`
	DirectionsURL     string `yaml:"directionsURL" validate:"omitempty,url"`
	Region            string `yaml:"region"`
	Language          string `yaml:"language"`
	TimeoutMS         int    `yaml:"timeoutMS" validate:"gte=0"`
	GeocodeCacheTTLMS int    `yaml:"geocodeCacheTTLMS" validate:"gte=0"`
}

// ChatConfig configures the map-grounded assistant collaborator.
type ChatConfig struct {
	Endpoint  string `yaml:"endpoint" validate:"omitempty,url"`
	APIKey    string `yaml:"apiKey"`
	Model     string `yaml:"model"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Storage StorageConfig `yaml:"storage" validate:"required"`
	Maps    MapsConfig    `yaml:"maps"`
	Chat    ChatConfig    `yaml:"chat"`
}
