package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tagRequiredForDriver marks a store setting the selected driver cannot run without.
const tagRequiredForDriver = "required_for_driver"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateStoreDriver, StoreConfig{})

	return v
}

// validateStoreDriver requires the connection settings of the selected driver
// only. Settings of unselected drivers are ignored.
func validateStoreDriver(sl validator.StructLevel) {
	store, ok := sl.Current().Interface().(StoreConfig)
	if !ok {
		return
	}

	switch store.Driver {
	case StoreDriverSQL:
		if store.SQL.DSN == "" {
			sl.ReportError(store.SQL.DSN, "SQL.DSN", "DSN", tagRequiredForDriver, StoreDriverSQL)
		}
	case StoreDriverDynamoDB:
		if store.DynamoDB.Table == "" {
			sl.ReportError(store.DynamoDB.Table, "DynamoDB.Table", "Table", tagRequiredForDriver, StoreDriverDynamoDB)
		}

		if store.DynamoDB.Region == "" {
			sl.ReportError(store.DynamoDB.Region, "DynamoDB.Region", "Region", tagRequiredForDriver, StoreDriverDynamoDB)
		}
	}
}

// Validate validates the configuration and returns an error if invalid.
// Validation fails fast - the service should not start with invalid config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

// formatValidationErrors lists every violation, one per line, by config key.
func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	lines := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		lines = append(lines, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	key := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", key, siblingCondition(key, e.Param()))
	case tagRequiredForDriver:
		return fmt.Sprintf("%s is required when store.driver is %s", key, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, e.Param())
	case "url":
		return key + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed validation: %s", key, e.Tag())
	}
}

// siblingCondition renders a required_if param such as "Enabled true" as
// the config key it refers to, e.g. "log.file.enabled is true".
func siblingCondition(key, param string) string {
	field, value, _ := strings.Cut(param, " ")

	sibling := strings.ToLower(field)
	if i := strings.LastIndex(key, "."); i >= 0 {
		sibling = key[:i+1] + sibling
	}

	return fmt.Sprintf("%s is %s", sibling, value)
}

// formatFieldPath converts "Config.Server.Port" to "server.port".
func formatFieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		path = namespace
	}

	return strings.ToLower(path)
}
