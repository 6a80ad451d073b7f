package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidEnvironment = errors.New("invalid environment")
	ErrUnsafeProduction   = errors.New("unsafe production environment")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("absurl", validateAbsURL); err != nil {
		panic(err)
	}
	return v
}

// validateAbsURL accepts URLs with both a scheme and a host.
func validateAbsURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Validate reports every field of env that is empty or malformed.
func Validate(env Environment) error {
	err := validate.Struct(env)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidEnvironment, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		fields = append(fields, fmt.Sprintf("%s failed %q", ns, fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidEnvironment, strings.Join(fields, ", "))
}

// CheckProduction applies the rules a bundle marked production must follow on
// top of Validate: every URL is https and no URL points at a loopback host.
// Bundles not marked production pass unchanged.
func CheckProduction(env Environment) error {
	if !env.Production {
		return nil
	}

	var problems []string
	for _, f := range []struct{ name, raw string }{
		{"apiServerUrl", env.APIServerURL},
		{"auth0.callbackURL", env.Auth.CallbackURL},
	} {
		u, err := url.Parse(f.raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", f.name, err))
			continue
		}
		if u.Scheme != "https" {
			problems = append(problems, fmt.Sprintf("%s uses scheme %q", f.name, u.Scheme))
		}
		if isLoopback(u.Hostname()) {
			problems = append(problems, fmt.Sprintf("%s points at loopback host %q", f.name, u.Hostname()))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrUnsafeProduction, strings.Join(problems, ", "))
	}
	return nil
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
