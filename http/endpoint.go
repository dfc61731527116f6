package http

const API_ROOT = "/api/v0"
const THREADS_API_ROOT = API_ROOT + "/threads"
const SCHEMAS_API_ROOT = API_ROOT + "/schemas"

type Endpoints struct {
	ThreadsEndpoint string
	SchemasEndpoint string
}

// UseDefaultEndpoints overwrites empty endpoints with Defaults.
// It does not overwrite a non-empty endpoints.
func (endpoints *Endpoints) UseDefaultEndpoints() {
	if endpoints.ThreadsEndpoint == "" {
		endpoints.ThreadsEndpoint = THREADS_API_ROOT
	}

	if endpoints.SchemasEndpoint == "" {
		endpoints.SchemasEndpoint = SCHEMAS_API_ROOT
	}
}
