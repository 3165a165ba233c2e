package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facetlabs/facet/version"
)

// SetVersionTemplate sets a custom version template for a cobra command, so
// `--version` prints the full build provenance rather than the bare version.
func SetVersionTemplate(cmd *cobra.Command, info version.Info) {
	cmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:    %s
  Built:     %s
  Platform:  %s
`, info.Commit, info.BuildDate, info.Platform))
}
