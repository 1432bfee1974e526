package validation

import "fmt"

// Pre-bound validators for the embedded schema set. Built once at
// package init; the registry is static, so a failure here is a
// packaging defect and panics rather than surfacing as a result.
var (
	loadValidator             = mustValidator("load")
	settingsValidator         = mustValidator("settings")
	targetValidator           = mustValidator("target")
	pageValidator             = mustValidator("page")
	filterValidator           = mustValidator("filter")
	filtersContainerValidator = mustValidator("filtersContainer")
)

func mustValidator(name string) *Validator {
	reg := DefaultRegistry()
	root, ok := reg[name]
	if !ok {
		panic(fmt.Sprintf("validation: no embedded schema named %q", name))
	}
	v, err := NewValidator(root, reg)
	if err != nil {
		panic(fmt.Sprintf("validation: %v", err))
	}
	return v
}

// ValidateLoad checks a load configuration value against the load
// schema (accessToken, id, settings, pageName, filter).
func ValidateLoad(value interface{}) ([]Error, error) {
	return loadValidator.Validate(value)
}

// ValidateSettings checks a settings value against the settings schema.
func ValidateSettings(value interface{}) ([]Error, error) {
	return settingsValidator.Validate(value)
}

// ValidateTarget checks a value against the target composition schema:
// it must be a page target or a visual target.
func ValidateTarget(value interface{}) ([]Error, error) {
	return targetValidator.Validate(value)
}

// ValidatePage checks a page value against the page schema.
func ValidatePage(value interface{}) ([]Error, error) {
	return pageValidator.Validate(value)
}

// ValidateFilter checks a value against the filter composition schema:
// it must be a basic filter or an advanced filter.
func ValidateFilter(value interface{}) ([]Error, error) {
	return filterValidator.Validate(value)
}

// ValidateFiltersContainer checks a value against the filtersContainer
// schema: a target plus a list of filters.
func ValidateFiltersContainer(value interface{}) ([]Error, error) {
	return filtersContainerValidator.Validate(value)
}

// ValidatorFor returns the pre-bound validator for one of the embedded
// schema names, or nil when the name has no pre-bound validator. The
// CLI uses this to map --type values onto validators.
func ValidatorFor(name string) *Validator {
	switch name {
	case "load":
		return loadValidator
	case "settings":
		return settingsValidator
	case "target":
		return targetValidator
	case "page":
		return pageValidator
	case "filter":
		return filterValidator
	case "filtersContainer":
		return filtersContainerValidator
	default:
		return nil
	}
}
