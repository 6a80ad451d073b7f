package config

// Builtin returns the bundles compiled into the binary. Only development is
// checked in; other targets come from a config file or the environment.
func Builtin() map[Target]Environment {
	return map[Target]Environment{
		Development: {
			Production:   false,
			APIServerURL: "http://127.0.0.1:5000",
			Auth: Auth{
				Domain:      "bencoffeeshop.us",
				Audience:    "coffee",
				ClientID:    "M5RlSN7IdRp5qCrVQKaDWQiP81mCuoTl",
				CallbackURL: "https://127.0.0.1:8100/login",
			},
		},
	}
}
