package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guichet-labs/guichet/internal/cli/output"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the Guichet version",
		Long:  `Print the Guichet version with the commit and date it was built from.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return renderVersion(cmdCtx.Renderer, info)
		},
	}
}

func renderVersion(r *output.Renderer, info BuildInfo) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(info)
	}
	s := r.Styles()
	r.Println(s.Bold.Render("guichet " + info.Version))
	r.Println(s.Muted.Render(fmt.Sprintf("commit %s, built %s", info.Commit, info.Built)))
	return nil
}
