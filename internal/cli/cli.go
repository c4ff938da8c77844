package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcfw/didweb/internal/config"
	"github.com/tcfw/didweb/pkg/did/resolver"
)

// app holds what the subcommands share: the captured config and one resolver
// built from it.
type app struct {
	cfg      *config.Config
	resolver *resolver.Resolver
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "didweb",
		Short:        "Resolve did:web identifiers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase verbosity")
	rootCmd.PersistentFlags().String("force-http", "", "comma-delimited hostnames resolved over plain http (default localhost)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "http client timeout, 0 for none")
	viper.BindPFlag(config.Cfg_verbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.Cfg_didweb_forceHTTPForHostnames, rootCmd.PersistentFlags().Lookup("force-http"))
	viper.BindPFlag(config.Cfg_http_timeout, rootCmd.PersistentFlags().Lookup("timeout"))

	regCommands(rootCmd, a)

	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	a.cfg = cfg

	r, err := resolver.New(resolver.WithWeb(cfg.DIDWeb().Options()...))
	if err != nil {
		return errors.Wrap(err, "initing resolver")
	}
	a.resolver = r

	return nil
}
