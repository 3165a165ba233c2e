package errors

import "fmt"

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *FacetError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *FacetError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// WorldNotFound creates a world document not found error
func WorldNotFound(path string) *FacetError {
	return New(ErrCodeWorldNotFound, fmt.Sprintf("world document not found: %s", path)).
		WithDetail("path", path)
}

// WorldInvalid creates an unparseable world document error
func WorldInvalid(path string, err error) *FacetError {
	return Wrap(err, ErrCodeWorldInvalid, fmt.Sprintf("failed to parse world document: %s", path)).
		WithDetail("path", path)
}

// WorldValidation creates a world document validation error
func WorldValidation(reason string) *FacetError {
	return New(ErrCodeWorldValidation, fmt.Sprintf("world document validation failed: %s", reason))
}

// PanelNotFound creates an unknown panel id error
func PanelNotFound(id int) *FacetError {
	return New(ErrCodePanelNotFound, fmt.Sprintf("panel %d is not open", id)).
		WithDetail("panel", id)
}

// NodeNotFound creates an unknown domain node error
func NodeNotFound(scope string) *FacetError {
	return New(ErrCodeNodeNotFound, fmt.Sprintf("no domain node for scope %s", scope)).
		WithDetail("scope", scope)
}
