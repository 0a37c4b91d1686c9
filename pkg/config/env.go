package config

import (
	"errors"
	"os"

	"github.com/jaspreet-dot-casa/rebuild-vendor/pkg/rebuild"
)

// ErrGOPATHNotSet is returned when the package root variable is missing or empty.
var ErrGOPATHNotSet = errors.New("GOPATH is not set")

// EnvGetter is an interface for getting environment variables (allows testing).
type EnvGetter interface {
	Getenv(key string) string
}

// RealEnvGetter gets environment variables from the real environment.
type RealEnvGetter struct{}

// Getenv gets an environment variable.
func (e *RealEnvGetter) Getenv(key string) string {
	return os.Getenv(key)
}

// MapEnvGetter serves variables from a fixed map.
type MapEnvGetter map[string]string

// Getenv gets an environment variable.
func (m MapEnvGetter) Getenv(key string) string {
	return m[key]
}

// Environment resolves the restricted build environment. GOPATH is required;
// PATH may be empty.
func Environment(getter EnvGetter) (rebuild.Env, error) {
	env := rebuild.Env{
		GOPATH: getter.Getenv("GOPATH"),
		PATH:   getter.Getenv("PATH"),
	}
	if env.GOPATH == "" {
		return env, ErrGOPATHNotSet
	}
	return env, nil
}
