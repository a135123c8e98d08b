package upload

// Config holds upload settings loaded from the environment.
type Config struct {
	MaxExtensionLength int `env:"UPLOAD_MAX_EXTENSION_LENGTH" envDefault:"16"`
}
