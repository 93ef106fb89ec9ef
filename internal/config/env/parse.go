package envconfig

import (
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New()

// parse fills raw from the environment and checks its validate tags.
func parse(raw any) error {
	if err := env.Parse(raw); err != nil {
		return err
	}
	return configValidator.Struct(raw)
}
