package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator() //nolint: gochecknoglobals

// newValidator reports fields by their yaml keys, the names users write in
// config files.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Validate checks the loaded values. Every violation is listed by its yaml
// path, e.g. "http.port: max=65535".
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("could not validate config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		msgs = append(msgs, path+": "+rule)
	}

	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
