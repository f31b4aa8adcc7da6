package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	namespacePattern = regexp.MustCompile(`^\\?[A-Za-z_][A-Za-z0-9_]*(\\[A-Za-z_][A-Za-z0-9_]*)*\\?$`)
	classNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("namespace", func(fl validator.FieldLevel) bool {
		return namespacePattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("classname", func(fl validator.FieldLevel) bool {
		return classNamePattern.MatchString(fl.Field().String())
	})
}

// errorMessages maps validation tags to messages. %s is the config key.
var errorMessages = map[string]string{
	"required":  "%s is required",
	"namespace": "%s must be a namespace such as App\\Http\\Controllers",
	"classname": "%s must be a class name without a namespace",
}

// Validate checks that every configured namespace and class name is usable
// in generated code. All problems are reported at once, sorted by key.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	structType := reflect.TypeOf(*cfg)
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		key := e.StructField()
		if field, ok := structType.FieldByName(e.StructField()); ok {
			if tag := field.Tag.Get("yaml"); tag != "" {
				key = strings.Split(tag, ",")[0]
			}
		}
		messages = append(messages, parseMessage(key, e))
	}
	sort.Strings(messages)

	return fmt.Errorf("invalid config: %s", strings.Join(messages, "; "))
}

func parseMessage(key string, e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		return fmt.Sprintf(msg, key)
	}
	return fmt.Sprintf("%s is invalid: %s", key, e.Tag())
}
