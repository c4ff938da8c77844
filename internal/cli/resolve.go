package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jpillora/backoff"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tcfw/didweb/internal/utils/logging"
	"github.com/tcfw/didweb/pkg/did"
	"github.com/tcfw/didweb/pkg/did/w3cdid"
	"gopkg.in/yaml.v3"
)

const resolutionContext = "https://w3id.org/did-resolution/v1"

// resolutionResult is the DID resolution result document.
type resolutionResult struct {
	Context               string                 `json:"@context"`
	DIDDocument           *w3cdid.Document       `json:"didDocument"`
	DIDResolutionMetadata did.ResolutionMetadata `json:"didResolutionMetadata"`
	DIDDocumentMetadata   *did.DocumentMetadata  `json:"didDocumentMetadata"`
}

func newResolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <did>",
		Short: "resolve a DID into its document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runResolve(cmd, args[0])
		},
	}

	cmd.Flags().String("accept", "", "preferred document media type")
	cmd.Flags().Bool("raw", false, "print the document representation without decoding it")
	cmd.Flags().StringP("output", "o", "json", "output format: json or yaml")
	cmd.Flags().Int("retries", 0, "retries on transport and server failures")

	return cmd
}

func (a *app) runResolve(cmd *cobra.Command, id string) error {
	accept, _ := cmd.Flags().GetString("accept")
	raw, _ := cmd.Flags().GetBool("raw")
	output, _ := cmd.Flags().GetString("output")
	retries, _ := cmd.Flags().GetInt("retries")

	if output != "json" && output != "yaml" {
		return errors.Errorf("unknown output format %q", output)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	input := did.ResolutionInputMetadata{Accept: accept}
	b := &backoff.Backoff{Min: 200 * time.Millisecond, Max: 5 * time.Second, Factor: 2, Jitter: true}

	if raw {
		var (
			meta did.ResolutionMetadata
			data []byte
		)
		err := retry(ctx, b, retries, func() did.ResolutionMetadata {
			meta, data, _ = a.resolver.ResolveRepresentation(ctx, id, input)
			return meta
		})
		if err != nil {
			return err
		}

		logging.Entry().WithField("contentType", meta.ContentType).Debug("resolved representation")
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	res := resolutionResult{Context: resolutionContext}
	err := retry(ctx, b, retries, func() did.ResolutionMetadata {
		res.DIDResolutionMetadata, res.DIDDocument, res.DIDDocumentMetadata = a.resolver.Resolve(ctx, id, input)
		return res.DIDResolutionMetadata
	})

	if werr := writeResult(cmd.OutOrStdout(), output, res); werr != nil {
		return werr
	}

	return err
}

// retry runs attempt until it succeeds, fails permanently or the retries are
// used up. Only the caller retries; resolvers never do.
func retry(ctx context.Context, b *backoff.Backoff, retries int, attempt func() did.ResolutionMetadata) error {
	for {
		meta := attempt()
		if !meta.Failed() {
			return nil
		}

		if !retryable(meta) || int(b.Attempt()) >= retries {
			return errors.Errorf("resolution failed: %s", meta.Error)
		}

		d := b.Duration()
		logging.WithError(errors.New(meta.Error)).WithField("wait", d).Info("retrying resolution")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
}

func retryable(meta did.ResolutionMetadata) bool {
	switch meta.Error {
	case did.ErrorInvalidDID, did.ErrorNotFound, did.ErrorMethodNotSupported, did.ErrorRepresentationNotSupported:
		return false
	}

	return !strings.HasPrefix(meta.Error, "JSON Error")
}

func writeResult(w io.Writer, format string, res resolutionResult) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding result")
	}

	if format == "yaml" {
		// go through JSON to keep the JSON-LD property names
		var v interface{}
		if err := json.Unmarshal(b, &v); err != nil {
			return errors.Wrap(err, "encoding result")
		}

		b, err = yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encoding result")
		}

		_, err = w.Write(b)
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
