package config

import (
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnvironment() Environment {
	return Environment{
		Production:   true,
		APIServerURL: "https://api.example.com",
		Auth: Auth{
			Domain:      "example.eu",
			Audience:    "drinks",
			ClientID:    "client-123",
			CallbackURL: "https://app.example.com/login",
		},
	}
}

func TestProvider_GetDevelopment(t *testing.T) {
	p, err := NewProvider(Builtin())
	require.NoError(t, err)

	env, err := p.Get(Development)
	require.NoError(t, err)

	assert.Equal(t, Environment{
		Production:   false,
		APIServerURL: "http://127.0.0.1:5000",
		Auth: Auth{
			Domain:      "bencoffeeshop.us",
			Audience:    "coffee",
			ClientID:    "M5RlSN7IdRp5qCrVQKaDWQiP81mCuoTl",
			CallbackURL: "https://127.0.0.1:8100/login",
		},
	}, env)
}

func TestProvider_GetMissingTarget(t *testing.T) {
	p, err := NewProvider(Builtin())
	require.NoError(t, err)

	env, err := p.Get(Staging)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigurationMissing)
	assert.Contains(t, err.Error(), `"staging"`)
	assert.Equal(t, Environment{}, env)
}

func TestProvider_BuiltinBundlesAreComplete(t *testing.T) {
	p, err := NewProvider(Builtin())
	require.NoError(t, err)
	require.NotEmpty(t, p.Targets())

	for _, target := range p.Targets() {
		t.Run(string(target), func(t *testing.T) {
			env, err := p.Get(target)
			require.NoError(t, err)

			assert.NotEmpty(t, env.APIServerURL)
			assert.NotEmpty(t, env.Auth.Domain)
			assert.NotEmpty(t, env.Auth.Audience)
			assert.NotEmpty(t, env.Auth.ClientID)
			assert.NotEmpty(t, env.Auth.CallbackURL)

			for _, raw := range []string{env.APIServerURL, env.Auth.CallbackURL} {
				u, err := url.Parse(raw)
				require.NoError(t, err)
				assert.NotEmpty(t, u.Scheme, raw)
				assert.NotEmpty(t, u.Host, raw)
			}
		})
	}
}

func TestProvider_GetIsDeterministic(t *testing.T) {
	p, err := NewProvider(Builtin())
	require.NoError(t, err)

	first, err := p.Get(Development)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env, err := p.Get(Development)
			assert.NoError(t, err)
			assert.Equal(t, first, env)
		}()
	}
	wg.Wait()
}

func TestProvider_IsolatedFromCallers(t *testing.T) {
	bundles := map[Target]Environment{Production: validEnvironment()}
	p, err := NewProvider(bundles)
	require.NoError(t, err)

	// changes to the input map or a returned copy do not reach the registry
	bundles[Production] = Environment{}
	env, err := p.Get(Production)
	require.NoError(t, err)
	env.APIServerURL = "http://elsewhere"

	again, err := p.Get(Production)
	require.NoError(t, err)
	assert.Equal(t, validEnvironment(), again)
	assert.NotEqual(t, env, again)
}

func TestNewProvider_RejectsInvalidBundle(t *testing.T) {
	bad := validEnvironment()
	bad.APIServerURL = "127.0.0.1:5000"

	p, err := NewProvider(map[Target]Environment{
		Development: Builtin()[Development],
		Production:  bad,
	})
	assert.Nil(t, p)
	require.ErrorIs(t, err, ErrInvalidEnvironment)
	assert.Contains(t, err.Error(), `target "production"`)
	assert.Contains(t, err.Error(), "apiServerUrl")
}

func TestNewProvider_RejectsEmptyTarget(t *testing.T) {
	_, err := NewProvider(map[Target]Environment{"": validEnvironment()})
	assert.ErrorIs(t, err, ErrInvalidEnvironment)
}

func TestProvider_Targets(t *testing.T) {
	p, err := NewProvider(map[Target]Environment{
		Staging:     validEnvironment(),
		Development: validEnvironment(),
		Production:  validEnvironment(),
	})
	require.NoError(t, err)
	assert.Equal(t, []Target{Development, Production, Staging}, p.Targets())
}
