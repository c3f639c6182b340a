package amadeus

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// tokenCache hands out the client-credentials access token, fetching a new one
// with the caller's context when the cached token has expired. One fetch runs
// at a time; waiters give up when their own context ends.
type tokenCache struct {
	cc    *clientcredentials.Config
	httpc *http.Client
	sem   chan struct{}
	tok   *oauth2.Token
}

func newTokenCache(cc *clientcredentials.Config, httpc *http.Client) *tokenCache {
	return &tokenCache{
		cc:    cc,
		httpc: httpc,
		sem:   make(chan struct{}, 1),
	}
}

// Token returns a valid token. Fetch errors are returned unchanged; if ctx
// ended during the fetch, ctx.Err() is returned instead.
func (t *tokenCache) Token(ctx context.Context) (*oauth2.Token, error) {
	select {
	case t.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-t.sem }()

	if t.tok.Valid() {
		return t.tok, nil
	}

	if t.httpc != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, t.httpc)
	}
	tok, err := t.cc.Token(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	t.tok = tok
	return tok, nil
}
