package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tcfw/didweb/pkg/cryptography"
)

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <did>",
		Short: "list the public keys of a DID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			pi, err := a.resolver.ResolvePI(ctx, args[0])
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, k := range pi.PublicKeys {
				mb, err := cryptography.EncodeMultibase(k.Key)
				if err != nil {
					mb = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", k.ID, k.Type, mb)
			}

			return tw.Flush()
		},
	}
}
