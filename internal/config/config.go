package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultTheme    = "off"
	DefaultLogLevel = "warn"
	DefaultPrompt   = "checkers"
)

var validate = validator.New()

// Config holds the console settings collected from flags, environment and .env
type Config struct {
	Theme       string `validate:"required,oneof=off brown green gray"`
	LogLevel    string `validate:"required,oneof=trace debug info warn error disabled"`
	HistoryFile string `validate:"omitempty,max=4096"`
	Prompt      string `validate:"required,max=16"`
	Plain       bool
}

func Default() Config {
	return Config{
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		Prompt:   DefaultPrompt,
	}
}

// Validate checks every field and reports all violations in one error
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("config validation: %w", err)
	}

	var details strings.Builder
	for _, e := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch e.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", e.Field()))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value()))
		case "max":
			if e.Kind() == reflect.String {
				details.WriteString(fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			} else {
				details.WriteString(fmt.Sprintf("%s must be at most %s", e.Field(), e.Param()))
			}
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", e.Field(), e.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", details.String())
}
