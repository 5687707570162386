package npm

import (
	"context"
	"errors"
	"net/http"

	tyerrors "github.com/matzehuels/thankyou/pkg/errors"
	"github.com/matzehuels/thankyou/pkg/integrations"
)

// DefaultBaseURL is the npm registry root. Package names are appended verbatim.
const DefaultBaseURL = "https://registry.npmjs.org/"

// Client fetches package documents from the npm registry.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an npm client that sends requests through hc.
// npm requires no custom headers.
func NewClient(hc *http.Client) *Client {
	return &Client{
		Client:  integrations.NewClient(hc, nil),
		baseURL: DefaultBaseURL,
	}
}

// FetchPackage retrieves description, homepage and license for pkg from the
// top level of its registry document. Missing or non-string description and
// homepage fields are reported as nil rather than failing the lookup.
func (c *Client) FetchPackage(ctx context.Context, pkg string) (*integrations.Metadata, error) {
	var data registryResponse
	if err := c.Get(ctx, c.baseURL+pkg, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, tyerrors.Wrap(tyerrors.ErrCodePackageNotFound, err, "npm package %s", pkg)
		}
		return nil, err
	}

	return &integrations.Metadata{
		Description: integrations.StringField(data.Description),
		HomePage:    integrations.StringField(data.HomePage),
		License:     integrations.LicenseText(data.License),
	}, nil
}

type registryResponse struct {
	Description any `json:"description"`
	HomePage    any `json:"homepage"`
	License     any `json:"license"`
}
