// Package http implements the weft client bindings over a daemon's REST
// surface, together with an in-memory stub of that surface for testing.
package http

import (
	"io"
	"io/ioutil"
	gohttp "net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/weftwork/weft/api"
	"github.com/weftwork/weft/internal/util"
	"github.com/weftwork/weft/log"
)

// ClientOptions configure a client bound to one daemon.  Configuration is
// an explicit value threaded into every request; the package keeps no
// ambient server state.
type ClientOptions struct {
	Endpoints
	// ServerAddr is the daemon base URL, including scheme.  Required.
	ServerAddr string
	// Http is optional.  Specify a custom HTTP client.
	Http *gohttp.Client
	// Schemas is optional.  Inject a custom schema resolver for thread
	// creation; by default schemas are resolved against the same daemon.
	Schemas api.SchemasClient
}

// backendClient provides the send primitives shared by the threads and
// schemas clients.
type backendClient struct {
	ClientOptions
}

func makeBackendClient(options ClientOptions) (*backendClient, error) {
	backend := &backendClient{ClientOptions: options}

	if backend.ServerAddr == "" {
		return nil, errors.New("Expected ServerAddr")
	}

	backend.UseDefaultEndpoints()

	if backend.Http == nil {
		backend.Http = defaultHttpClient()
	}

	return backend, nil
}

func (client *backendClient) sendGet(path string) (*gohttp.Response, error) {
	addr := client.ServerAddr + path
	log.Info("HTTP GET to %s", addr)

	resp, err := client.Http.Get(addr)

	if err != nil {
		return nil, errors.Wrap(err, "HTTP GET failed")
	}

	return resp, nil
}

func (client *backendClient) sendPost(path, bodyType string, body io.Reader) (*gohttp.Response, error) {
	addr := client.ServerAddr + path
	log.Info("HTTP POST to %s", addr)

	resp, err := client.Http.Post(addr, bodyType, body)

	if err != nil {
		return nil, errors.Wrap(err, "HTTP POST failed")
	}

	return resp, nil
}

func (client *backendClient) sendPut(path, bodyType string, body io.Reader) (*gohttp.Response, error) {
	return client.sendBodyless("PUT", path, bodyType, body)
}

func (client *backendClient) sendDelete(path string) (*gohttp.Response, error) {
	return client.sendBodyless("DELETE", path, "", nil)
}

func (client *backendClient) sendBodyless(method, path, bodyType string, body io.Reader) (*gohttp.Response, error) {
	addr := client.ServerAddr + path
	log.Info("HTTP %s to %s", method, addr)

	req, err := gohttp.NewRequest(method, addr, body)

	if err != nil {
		return nil, errors.Wrap(err, "HTTP "+method+" failed")
	}

	if bodyType != "" {
		req.Header.Set(CONTENT_TYPE, bodyType)
	}

	resp, err := client.Http.Do(req)

	if err != nil {
		return nil, errors.Wrap(err, "HTTP "+method+" failed")
	}

	return resp, nil
}

// decodeJson drains and closes the response body.  Non-2xx statuses are
// errors on this path.
func decodeJson(resp *gohttp.Response, message interface{}) error {
	defer drainResponse(resp)

	if !isSuccess(resp.StatusCode) {
		return responseError(resp)
	}

	if !HasContentType(resp.Header, MIME_JSON) {
		return incorrectContentType(resp.StatusCode, resp.Header)
	}

	return util.DecodeJson(message, resp.Body)
}

// statusOnly drains and closes the response body, reporting whether the
// daemon answered the one status that means success for this call.
func statusOnly(resp *gohttp.Response, wanted int) bool {
	defer drainResponse(resp)
	return resp.StatusCode == wanted
}

func responseError(resp *gohttp.Response) error {
	if HasContentType(resp.Header, MIME_TEXT) {
		all, err := ioutil.ReadAll(resp.Body)

		if err != nil {
			log.Warn("Failed to read response body")
			return errors.Errorf("Unexpected API response (%d)", resp.StatusCode)
		}

		return errors.Errorf("Unexpected API response (%d): \n\n%s", resp.StatusCode, string(all))
	}

	return errors.Errorf("Unexpected API response (%d): %v", resp.StatusCode, resp.Header[CONTENT_TYPE])
}

func drainResponse(resp *gohttp.Response) {
	_, err := io.Copy(ioutil.Discard, resp.Body)

	if err != nil {
		log.Warn("Failed to drain response body: %v", err)
	}

	err = resp.Body.Close()

	if err != nil {
		log.Warn("Failed to close response body: %v", err)
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// MakeBackendHttpClient builds a client suitable for daemon connections.
func MakeBackendHttpClient(timeout time.Duration) *gohttp.Client {
	return &gohttp.Client{
		Timeout: time.Duration(timeout),
		Transport: &gohttp.Transport{
			DisableKeepAlives: true,
		},
	}
}

var __frontendClient *gohttp.Client

func defaultHttpClient() *gohttp.Client {
	if __frontendClient == nil {
		__frontendClient = &gohttp.Client{
			Timeout: time.Duration(__FRONTEND_TIMEOUT),
		}
	}

	return __frontendClient
}

const __FRONTEND_TIMEOUT = 1 * time.Minute
