package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileDocument is the on-disk layout of a bundle file:
//
//	environments:
//	  production:
//	    production: true
//	    apiServerUrl: https://api.example.com
//	    auth0: {url: ..., audience: ..., clientId: ..., callbackURL: ...}
type fileDocument struct {
	Environments map[Target]Environment `yaml:"environments"`
}

// LoadFile reads bundles from a YAML file. Unknown keys are rejected so that a
// misspelt field cannot leave a value silently empty.
func LoadFile(path string) (map[Target]Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc fileDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config file %s is empty", path)
		}
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file %s must contain a single document", path)
	}
	if len(doc.Environments) == 0 {
		return nil, fmt.Errorf("config file %s defines no environments", path)
	}
	return doc.Environments, nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadEnv builds a bundle from APP_* variables. ok is false when none of the
// bundle variables is set. A partial set is an error: missing values are never
// defaulted. APP_AUTH_CLIENT_ID alone does not make a bundle, see WithClientID.
func LoadEnv(lookup LookupFunc) (env Environment, ok bool, err error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	triggers := []string{EnvProduction, EnvAPIServerURL, EnvAuthDomain, EnvAuthAudience, EnvAuthCallbackURL}
	for _, key := range triggers {
		if get(key) != "" {
			ok = true
			break
		}
	}
	if !ok {
		return Environment{}, false, nil
	}

	var missing []string
	for _, key := range append(triggers, EnvAuthClientID) {
		if get(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Environment{}, true, fmt.Errorf("%w: environment variables not set: %s", ErrInvalidEnvironment, strings.Join(missing, ", "))
	}

	prod, err := strconv.ParseBool(get(EnvProduction))
	if err != nil {
		return Environment{}, true, fmt.Errorf("%w: %s: %v", ErrInvalidEnvironment, EnvProduction, err)
	}

	return Environment{
		Production:   prod,
		APIServerURL: get(EnvAPIServerURL),
		Auth: Auth{
			Domain:      get(EnvAuthDomain),
			Audience:    get(EnvAuthAudience),
			ClientID:    get(EnvAuthClientID),
			CallbackURL: get(EnvAuthCallbackURL),
		},
	}, true, nil
}

// WithClientID returns a copy of env using id as the client identifier. An
// empty id leaves env unchanged.
func WithClientID(env Environment, id string) Environment {
	if id = strings.TrimSpace(id); id != "" {
		env.Auth.ClientID = id
	}
	return env
}
