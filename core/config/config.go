package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsing is returned when environment variables cannot be parsed into the target struct.
var ErrParsing = errors.New("failed to parse environment variables")

var (
	loadEnvOnce sync.Once
	cache       sync.Map // reflect.Type -> any (value of T)
	mu          sync.Mutex
)

// Load populates cfg from environment variables. The first successful load of
// a type is cached and copied into cfg on later calls.
func Load[T any](cfg *T) error {
	loadEnvOnce.Do(func() {
		// .env is optional.
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf((*T)(nil)).Elem()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.Parse(&loaded); err != nil {
		return fmt.Errorf("%w: %w", ErrParsing, err)
	}

	cache.Store(typ, loaded)
	*cfg = loaded
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
