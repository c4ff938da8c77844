package cli

import "github.com/spf13/cobra"

func regCommands(rootCmd *cobra.Command, a *app) {
	rootCmd.AddCommand(newResolveCmd(a))
	rootCmd.AddCommand(newURLCmd(a))
	rootCmd.AddCommand(newKeysCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
}
