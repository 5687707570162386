package crates

import (
	"context"
	"errors"
	"net/http"

	tyerrors "github.com/matzehuels/thankyou/pkg/errors"
	"github.com/matzehuels/thankyou/pkg/integrations"
)

const (
	// DefaultBaseURL is the crates.io crate endpoint. Crate names are appended verbatim.
	DefaultBaseURL = "https://crates.io/api/v1/crates/"

	// UserAgent identifies requests to crates.io, which rejects anonymous clients.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"
)

// Client provides access to the crates.io package registry API.
//
// Every request carries [UserAgent] as required by crates.io API policy.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client that sends requests through hc.
func NewClient(hc *http.Client) *Client {
	headers := map[string]string{
		"User-Agent": UserAgent,
	}
	return &Client{
		Client:  integrations.NewClient(hc, headers),
		baseURL: DefaultBaseURL,
	}
}

// FetchCrate retrieves description, homepage and license for crate from the
// nested "crate" object of the crates.io response.
//
// Missing or null fields, or a missing "crate" object, are reported as nil
// metadata. The lookup fails only for unknown crates (PACKAGE_NOT_FOUND
// wrapping [integrations.ErrNotFound]), HTTP failures
// ([integrations.ErrNetwork]) and undecodable bodies ([integrations.ErrDecode]).
func (c *Client) FetchCrate(ctx context.Context, crate string) (*integrations.Metadata, error) {
	var data crateResponse
	if err := c.Get(ctx, c.baseURL+crate, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, tyerrors.Wrap(tyerrors.ErrCodePackageNotFound, err, "crate %s", crate)
		}
		return nil, err
	}
	if data.Crate == nil {
		return &integrations.Metadata{}, nil
	}

	return &integrations.Metadata{
		Description: integrations.StringField(data.Crate.Description),
		HomePage:    integrations.StringField(data.Crate.HomePage),
		License:     integrations.LicenseText(data.Crate.License),
	}, nil
}

type crateResponse struct {
	Crate *struct {
		Name        string `json:"name"`
		Description any    `json:"description"`
		HomePage    any    `json:"homepage"`
		License     any    `json:"license"`
	} `json:"crate"`
}
