package config

// Target names a deployment environment. The set is open: any name with a
// registered bundle is valid.
type Target string

const (
	Development Target = "development"
	Staging     Target = "staging"
	Production  Target = "production"
)

// Environment is the set of deployment-specific constants handed to the
// front-end. Values are copied on every read from a Provider.
type Environment struct {
	Production   bool   `json:"production" yaml:"production"`
	APIServerURL string `json:"apiServerUrl" yaml:"apiServerUrl" validate:"required,absurl"`
	Auth         Auth   `json:"auth0" yaml:"auth0"`
}

// Auth is what the identity provider needs to run the login redirect and to
// scope issued tokens.
type Auth struct {
	// Tenant prefix, e.g. "bencoffeeshop.us" for bencoffeeshop.us.auth0.com.
	Domain      string `json:"url" yaml:"url" validate:"required,hostname_rfc1123"`
	Audience    string `json:"audience" yaml:"audience" validate:"required"`
	ClientID    string `json:"clientId" yaml:"clientId" validate:"required"`
	CallbackURL string `json:"callbackURL" yaml:"callbackURL" validate:"required,absurl"`
}
