package cli

import (
	"fmt"
	"os"

	"github.com/facetlabs/facet/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Run 'facet init' to create a new configuration.\n")
		return err

	case errors.ErrCodeWorldNotFound:
		if facetErr, ok := err.(*errors.FacetError); ok {
			fmt.Fprintf(os.Stderr, "❌ World document '%s' not found\n", facetErr.Details["path"])
			fmt.Fprintf(os.Stderr, "Check the 'world' entry in facet.yml, or run 'facet init' to create a sample world.\n")
		}
		return err

	case errors.ErrCodeWorldInvalid:
		fmt.Fprintf(os.Stderr, "❌ World document is not valid YAML: %v\n", err)
		return err

	case errors.ErrCodeWorldValidation:
		fmt.Fprintf(os.Stderr, "❌ World document failed validation: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'facet validate' to see every problem at once.\n")
		return err

	case errors.ErrCodePanelNotFound:
		if facetErr, ok := err.(*errors.FacetError); ok {
			fmt.Fprintf(os.Stderr, "❌ Panel %v is not open\n", facetErr.Details["panel"])
		}
		return err

	case errors.ErrCodeNodeNotFound:
		if facetErr, ok := err.(*errors.FacetError); ok {
			fmt.Fprintf(os.Stderr, "❌ No node matches scope '%v'\n", facetErr.Details["scope"])
			fmt.Fprintf(os.Stderr, "Check the panel scopes in facet.yml against the world document.\n")
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if facetErr, ok := err.(*errors.FacetError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", facetErr.ToJSON())
			}
		}
		return err
	}
}
