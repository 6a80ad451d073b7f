package config

const (
	DefaultTarget = Development
	DefaultFormat = "json"
)

// Defaults for the -target and -config flags.
const (
	EnvDeployTarget = "DEPLOY_TARGET"
	EnvConfigFile   = "CONFIG_FILE"
)

// Deploy-time injection of a whole bundle. APP_AUTH_CLIENT_ID on its own
// overrides the client id of the selected bundle.
const (
	EnvProduction      = "APP_PRODUCTION"
	EnvAPIServerURL    = "APP_API_SERVER_URL"
	EnvAuthDomain      = "APP_AUTH_DOMAIN"
	EnvAuthAudience    = "APP_AUTH_AUDIENCE"
	EnvAuthClientID    = "APP_AUTH_CLIENT_ID"
	EnvAuthCallbackURL = "APP_AUTH_CALLBACK_URL"
)
