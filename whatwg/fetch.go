package whatwg

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// indexURL is the home of the published index files.
const indexURL = "https://encoding.spec.whatwg.org/index-%s.txt"

// Fetch retrieves the raw index file for the named index. The caller owns
// the returned body.
func Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	url := fmt.Sprintf(indexURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("fetching %s", url)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whatwg: fetching %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("whatwg: fetching %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}
