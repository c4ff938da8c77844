package web

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tcfw/didweb/pkg/did"
)

// fetch performs a single GET of the document location. Every outcome is
// described by the returned metadata; no error escapes.
func (r *Resolver) fetch(ctx context.Context, url string, accept string) (did.ResolutionMetadata, []byte, *did.DocumentMetadata) {
	log := r.logger.WithField("url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return sendError(url, err), nil, nil
	}
	req.Header.Set("Accept", accept)
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.WithError(err).Debug("fetching did document")
		return sendError(url, err), nil, nil
	}
	defer resp.Body.Close()

	log = log.WithField("status", resp.StatusCode)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		log.Debug("did document not found")
		return did.NewResolutionError(did.ErrorNotFound), nil, &did.DocumentMetadata{}
	default:
		log.Debug("unexpected status fetching did document")
		io.Copy(io.Discard, io.LimitReader(resp.Body, r.maxSize))
		return did.NewResolutionError(fmt.Sprintf("HTTP status %s for url (%s)", resp.Status, url)), nil, &did.DocumentMetadata{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxSize+1))
	if err == nil && int64(len(body)) > r.maxSize {
		err = errors.Errorf("document exceeds %d bytes", r.maxSize)
	}
	if err != nil {
		log.WithError(err).Debug("reading did document")
		return did.NewResolutionError("Error reading HTTP response: " + err.Error()), nil, nil
	}

	log.WithFields(logrus.Fields{"size": len(body)}).Debug("fetched did document")

	return did.ResolutionMetadata{ContentType: did.TypeDIDLDJSON}, body, &did.DocumentMetadata{}
}

func sendError(url string, err error) did.ResolutionMetadata {
	return did.NewResolutionError(fmt.Sprintf("Error sending HTTP request (%s): %s", url, err))
}
