package authz

import (
	"fmt"
	"strings"

	"github.com/day0ops/coffeeshop/envconfig/pkg/config"
	"golang.org/x/oauth2"
)

const providerHostSuffix = ".auth0.com"

// Client derives the identity-provider endpoints and login redirect from the
// auth section of an environment bundle.
type Client struct {
	auth   config.Auth
	oauth2 *oauth2.Config
}

func NewClient(env config.Environment) *Client {
	c := &Client{auth: env.Auth}
	issuer := c.Issuer()
	c.oauth2 = &oauth2.Config{
		ClientID: env.Auth.ClientID,
		Endpoint: oauth2.Endpoint{
			AuthURL:  issuer + "authorize",
			TokenURL: issuer + "oauth/token",
		},
		RedirectURL: env.Auth.CallbackURL,
	}
	return c
}

// Issuer is the expected "iss" claim of tokens minted for this tenant.
func (c *Client) Issuer() string {
	return fmt.Sprintf("https://%s%s/", strings.TrimSuffix(c.auth.Domain, providerHostSuffix), providerHostSuffix)
}

// Audience is the expected "aud" claim.
func (c *Client) Audience() string {
	return c.auth.Audience
}

// OAuth2Config returns a copy of the client's OAuth2 settings.
func (c *Client) OAuth2Config() *oauth2.Config {
	cfg := *c.oauth2
	return &cfg
}

// LoginURL builds the implicit-flow authorize URL the front-end redirects to.
// The access token comes back in the fragment of the callback URL.
func (c *Client) LoginURL(state string) string {
	return c.oauth2.AuthCodeURL(state,
		oauth2.SetAuthURLParam("audience", c.auth.Audience),
		oauth2.SetAuthURLParam("response_type", "token"),
	)
}
