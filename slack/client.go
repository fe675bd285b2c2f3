package slack

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/slack-go/slack"
)

// NewClient builds a Slack client that sends requests through the given
// HTTP client.
//
// Messages posted with the returned client always carry as_user=false.
// slack-go omits the flag entirely when it holds its default value.
func NewClient(token string, httpClient *http.Client, opts ...slack.Option) *slack.Client {
	hc := *httpClient
	hc.Transport = &asAppTransport{base: httpClient.Transport}
	return slack.New(token, append(opts, slack.OptionHTTPClient(&hc))...)
}

// asAppTransport adds as_user=false to chat.postMessage forms.
type asAppTransport struct {
	base http.RoundTripper
}

func (t *asAppTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	if req.Body == nil || !strings.HasSuffix(req.URL.Path, "/chat.postMessage") ||
		!strings.HasPrefix(req.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		return base.RoundTrip(req)
	}

	body, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read chat.postMessage form: %v", err)
	}

	form, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("invalid chat.postMessage form: %v", err)
	}
	form.Set("as_user", "false")
	encoded := []byte(form.Encode())

	// A RoundTripper must not modify the request it was given.
	out := req.Clone(req.Context())
	out.Body = io.NopCloser(bytes.NewReader(encoded))
	out.ContentLength = int64(len(encoded))
	out.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(encoded)), nil
	}
	return base.RoundTrip(out)
}
