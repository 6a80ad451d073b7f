package config

// Sources names where bundles come from at startup.
type Sources struct {
	// File is an optional YAML bundle file.
	File string
	// Target receives the bundle built from APP_* variables, if any, and the
	// APP_AUTH_CLIENT_ID override.
	Target Target
	// Lookup reads the environment. Nil disables environment sources.
	Lookup LookupFunc
}

// Load merges the builtin bundles, the file bundles and the environment bundle
// in that order and builds a Provider from the result. Later sources replace
// whole bundles; fields are never merged across sources.
func Load(src Sources) (*Provider, error) {
	bundles := Builtin()

	if src.File != "" {
		fromFile, err := LoadFile(src.File)
		if err != nil {
			return nil, err
		}
		for target, env := range fromFile {
			bundles[target] = env
		}
	}

	if src.Lookup != nil && src.Target != "" {
		env, ok, err := LoadEnv(src.Lookup)
		if err != nil {
			return nil, err
		}
		if ok {
			bundles[src.Target] = env
		}
		if id, set := src.Lookup(EnvAuthClientID); set {
			if env, registered := bundles[src.Target]; registered {
				bundles[src.Target] = WithClientID(env, id)
			}
		}
	}

	return NewProvider(bundles)
}
