package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tcfw/didweb/pkg/did/web"
)

func newURLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "url <did>",
		Short: "print the document location of a did:web identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := web.URL(args[0], a.cfg.DIDWeb().ForceHTTP)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
}
