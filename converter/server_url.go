// This file decomposes an OAS 3.x server URL into the OAS 2.0
// host/basePath/schemes triple.

package converter

import (
	"fmt"
	"net/url"

	"github.com/erraggy/har2oas/internal/pathutil"
)

// parseServerURL extracts host, basePath, and schemes from an OAS 3.x
// server URL. A URL without a path yields basePath "/".
func parseServerURL(serverURL string) (host, basePath string, schemes []string, err error) {
	// Server variables like https://{region}.example.com have no OAS 2.0
	// equivalent; substitute a placeholder so the URL still parses.
	cleanURL := pathutil.PathParamRegex.ReplaceAllString(serverURL, "placeholder")

	u, err := url.Parse(cleanURL)
	if err != nil {
		return "", "", nil, fmt.Errorf("invalid server URL: %w", err)
	}

	if u.Scheme != "" {
		schemes = []string{u.Scheme}
	}

	host = u.Host
	basePath = u.Path
	if basePath == "" {
		basePath = "/"
	}

	return host, basePath, schemes, nil
}
