// Weft is a typed Go client for the weft daemon, a peer-to-peer process
// that owns named, access-controlled, distributed record sets called
// threads.
//
// All distributed-systems behaviour lives in the daemon: replication,
// access control, and peer discovery.  This package is a facade over the
// request construction and response parsing in the http package.
package weft

import (
	gohttp "net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/weftwork/weft/api"
	"github.com/weftwork/weft/http"
)

// Weft client options.
type Options struct {
	// ServerAddr is the daemon base URL, including scheme.  Required.
	ServerAddr string
	// Http is optional.  Specify a custom HTTP client.
	Http *gohttp.Client
	// Endpoints is optional.  Override the daemon's REST paths.
	Endpoints http.Endpoints
	// Schemas is optional.  Inject a custom schema resolver for Add.
	Schemas api.SchemasClient
}

// MakeClient builds a ThreadsClient with default options for serverAddr.
func MakeClient(serverAddr string) (api.ThreadsClient, error) {
	return MakeThreadsClient(Options{ServerAddr: serverAddr})
}

func MakeThreadsClient(options Options) (api.ThreadsClient, error) {
	client, err := http.MakeThreadsClient(options.clientOptions())

	if err != nil {
		return nil, errors.Wrap(err, "MakeThreadsClient failed")
	}

	return client, nil
}

func MakeSchemasClient(options Options) (api.SchemasClient, error) {
	client, err := http.MakeSchemasClient(options.clientOptions())

	if err != nil {
		return nil, errors.Wrap(err, "MakeSchemasClient failed")
	}

	return client, nil
}

// MakeBackendHttpClient builds a client suitable for daemon connections.
func MakeBackendHttpClient(timeout time.Duration) *gohttp.Client {
	return http.MakeBackendHttpClient(timeout)
}

func (options Options) clientOptions() http.ClientOptions {
	return http.ClientOptions{
		Endpoints:  options.Endpoints,
		ServerAddr: options.ServerAddr,
		Http:       options.Http,
		Schemas:    options.Schemas,
	}
}
