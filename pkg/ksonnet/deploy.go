package ksonnet

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

// TimeNowFunc lets you specify the function for obtaining the current time.
// This is mainly to aid in testing.
var TimeNowFunc = time.Now

// NewEnvName synthesizes a deployment-environment name from the current
// timestamp plus a random suffix, so independent runs sharing a bundle
// template never clash even within the same second.
func NewEnvName() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:4]
	return "e2e-" + TimeNowFunc().Format("0102-1504-") + suffix
}

// Deploy registers an environment (synthesizing a unique name when envName
// is empty), sets every parameter against the component within it and
// applies the pair to the cluster. Params may be empty but must not be nil.
// No partial-apply cleanup is attempted on failure.
func (a *App) Deploy(component string, params map[string]string, envName, account string) error {
	if component == "" {
		return errors.New("component can't be empty")
	}
	if params == nil {
		return errors.New("params can't be nil; pass an empty map")
	}

	if envName == "" {
		envName = NewEnvName()
	}

	a.cli.logger.Infof("Using app directory: %s", a.Dir)

	if err := a.EnvAdd(envName); err != nil {
		return err
	}

	for k, v := range params {
		if err := a.ParamSet(envName, component, k, v); err != nil {
			return err
		}
	}

	return a.Apply(envName, component, account)
}

// ParseParams parses a comma-separated k=v list into an ordered mapping.
// Each pair is split on the first "=" only, so values may contain "=".
// Malformed pairs are accumulated and reported together.
func ParseParams(raw string) (map[string]string, error) {
	params := map[string]string{}
	var errs *multierror.Error

	for _, pair := range strings.Split(raw, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			errs = multierror.Append(errs, fmt.Errorf("malformed parameter %q: expected key=value", pair))
			continue
		}
		params[key] = value
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return params, nil
}
