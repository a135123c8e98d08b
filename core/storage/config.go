package storage

// Config holds storage settings loaded from the environment.
type Config struct {
	Dir       string `env:"STORAGE_DIR" envDefault:"./storage"`
	CreateDir bool   `env:"STORAGE_CREATE_DIR" envDefault:"true"`
	Fsync     bool   `env:"STORAGE_FSYNC" envDefault:"false"`
}

// NewFromConfig creates LocalStorage from Config. Extra options are applied
// after the config values.
func NewFromConfig(cfg Config, opts ...Option) (*LocalStorage, error) {
	base := []Option{
		WithCreateDirs(cfg.CreateDir),
		WithSync(cfg.Fsync),
	}
	return NewLocalStorage(cfg.Dir, append(base, opts...)...)
}
