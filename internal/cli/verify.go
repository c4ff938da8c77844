package cli

import (
	"context"
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tcfw/didweb/internal/utils/logging"
	"github.com/tcfw/didweb/pkg/cryptography"
	"github.com/tcfw/didweb/pkg/did"
)

func newVerifyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <did>",
		Short: "verify a signature against the keys of a DID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd, args[0])
		},
	}

	cmd.Flags().StringP("message", "m", "-", "file holding the signed message. Use '-' for stdin")
	cmd.Flags().StringP("signature", "s", "", "multibase encoded signature")
	cmd.Flags().StringP("key", "k", "", "verification method id or fragment. blank tries every key")
	cmd.MarkFlagRequired("signature")

	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, id string) error {
	msgFile, _ := cmd.Flags().GetString("message")
	sigStr, _ := cmd.Flags().GetString("signature")
	key, _ := cmd.Flags().GetString("key")

	sig, err := cryptography.DecodeMultibase(sigStr)
	if err != nil {
		return errors.Wrap(err, "decoding signature")
	}

	msg, err := readMessage(cmd, msgFile)
	if err != nil {
		return errors.Wrap(err, "reading message")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	meta, doc, _ := a.resolver.Resolve(ctx, id, did.ResolutionInputMetadata{})
	if meta.Failed() {
		return errors.Errorf("resolution failed: %s", meta.Error)
	}
	if doc == nil {
		return errors.New("resolution returned no document")
	}

	if key != "" {
		err = doc.SignedBy(key, sig, msg)
	} else {
		err = doc.Signed(sig, msg)
	}
	if err != nil {
		logging.WithError(err).WithField("did", id).Debug("signature rejected")
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return err
}

func readMessage(cmd *cobra.Command, f string) ([]byte, error) {
	if f == "-" {
		return ioutil.ReadAll(cmd.InOrStdin())
	}
	return ioutil.ReadFile(f)
}
