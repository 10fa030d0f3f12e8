package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> *entry
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

// Load populates cfg from environment variables, loading a .env file from the
// working directory on first use if one exists. Values of the same type are
// parsed once and served from cache afterwards, including a parse error.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil %s", reflect.TypeFor[T]())
	}

	dotenvOnce.Do(func() {
		// A missing .env file is normal outside development.
		_ = godotenv.Load()
	})

	v, _ := cache.LoadOrStore(reflect.TypeFor[T](), &entry{})
	e := v.(*entry)
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = fmt.Errorf("config: failed to parse %s: %w", reflect.TypeFor[T](), err)
			return
		}
		e.value = parsed
	})
	if e.err != nil {
		return e.err
	}

	*cfg = e.value.(T)
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
