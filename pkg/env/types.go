package env

import (
	"errors"
	"os"
)

// Lookup provides environment variables and the working directory
type Lookup interface {
	// LookupEnv behaves like os.LookupEnv
	LookupEnv(key string) (string, bool)

	// Getwd behaves like os.Getwd
	Getwd() (string, error)
}

// ErrNoWorkingDir is returned by Map.Getwd when no directory was configured
var ErrNoWorkingDir = errors.New("env: no working directory")

type osLookup struct{}

func (osLookup) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (osLookup) Getwd() (string, error)              { return os.Getwd() }

// OS returns a Lookup backed by the running process
func OS() Lookup {
	return osLookup{}
}

// Map is a fixed, in-memory environment
type Map struct {
	Vars map[string]string // Variable name -> value
	Dir  string            // Working directory; empty means unknown
}

// LookupEnv returns the value stored under key
func (m Map) LookupEnv(key string) (string, bool) {
	v, ok := m.Vars[key]
	return v, ok
}

// Getwd returns Dir, or ErrNoWorkingDir when it is empty
func (m Map) Getwd() (string, error) {
	if m.Dir == "" {
		return "", ErrNoWorkingDir
	}
	return m.Dir, nil
}

type overlay struct {
	base Lookup
	vars map[string]string
}

func (o overlay) LookupEnv(key string) (string, bool) {
	if v, ok := o.vars[key]; ok {
		return v, true
	}
	return o.base.LookupEnv(key)
}

func (o overlay) Getwd() (string, error) {
	return o.base.Getwd()
}

// Overlay returns a Lookup where vars shadow the variables of base.
// The working directory always comes from base.
func Overlay(base Lookup, vars map[string]string) Lookup {
	if len(vars) == 0 {
		return base
	}
	return overlay{base: base, vars: vars}
}

// Get returns the value of key and whether it is set to a non-empty string
func Get(l Lookup, key string) (string, bool) {
	v, ok := l.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
