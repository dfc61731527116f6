package http

import (
	"crypto/sha256"
	"encoding/json"
	"io/ioutil"
	gohttp "net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/weftwork/weft/api"
	"github.com/weftwork/weft/internal/util"
	"github.com/weftwork/weft/log"
)

// StubService is an in-memory rendition of the daemon's threads and schemas
// REST surface.  It backs the end-to-end tests and `weft stub serve`, and is
// emphatically not a daemon: nothing replicates, nothing persists, and the
// access-control classes are stored but never enforced.
type StubService struct {
	sync.Mutex
	threads []api.Thread
	schemas map[string]api.SchemaNode
}

// The daemon ships these built-in schemas.
var defaultSchemas = map[string]api.SchemaNode{
	"blob":        {Name: "blob", Mill: "/blob"},
	"camera-roll": {Name: "camera-roll", Mill: "/image/exif"},
	"media":       {Name: "media", Mill: "/image/resize"},
	"json":        {Name: "json", Mill: "/json"},
}

func MakeStubService() *StubService {
	service := &StubService{
		schemas: map[string]api.SchemaNode{},
	}

	// The daemon always owns its account thread.
	service.threads = append(service.threads, api.Thread{
		ID:      DEFAULT_THREAD,
		Name:    DEFAULT_THREAD,
		Type:    api.THREAD_PRIVATE,
		Sharing: api.SHARING_NOT_SHARED,
	})

	return service
}

func (service *StubService) Handler() gohttp.Handler {
	root := mux.NewRouter()
	topLevel := root.PathPrefix(API_ROOT).Subrouter()

	topLevel.HandleFunc("/threads", service.listThreads).Methods("GET")
	topLevel.HandleFunc("/threads/{name}", service.addThread).Methods("POST")
	topLevel.HandleFunc("/threads/{id}", service.getThread).Methods("GET")
	topLevel.HandleFunc("/threads/{id}", service.putThread).Methods("PUT")
	topLevel.HandleFunc("/threads/{id}", service.removeThread).Methods("DELETE")
	topLevel.HandleFunc("/threads/{id}/name", service.renameThread).Methods("PUT")
	topLevel.HandleFunc("/threads/{id}/peers", service.threadPeers).Methods("GET")

	topLevel.HandleFunc("/schemas", service.addSchema).Methods("POST")
	topLevel.HandleFunc("/schemas/defaults", service.listDefaultSchemas).Methods("GET")
	topLevel.HandleFunc("/schemas/defaults/{name}", service.addDefaultSchema).Methods("POST")

	return root
}

func (service *StubService) addThread(rw gohttp.ResponseWriter, req *gohttp.Request) {
	name := mux.Vars(req)["name"]
	query := req.URL.Query()

	thread := api.Thread{
		Name:    name,
		Key:     query.Get("key"),
		Schema:  query.Get("schema"),
		Type:    api.ThreadType(query.Get("type")),
		Sharing: api.ThreadSharing(query.Get("sharing")),
	}

	if thread.Type == "" {
		thread.Type = api.THREAD_PRIVATE
	}

	if thread.Sharing == "" {
		thread.Sharing = api.SHARING_NOT_SHARED
	}

	if whitelist := query.Get("whitelist"); whitelist != "" {
		thread.Whitelist = splitComma(whitelist)
	}

	id, err := util.RandomBase58(__THREAD_ID_LENGTH)

	if err != nil {
		serviceError(rw, err)
		return
	}

	thread.ID = id

	service.Lock()
	service.threads = append(service.threads, thread)
	service.Unlock()

	sendJson(rw, gohttp.StatusCreated, thread)
}

func (service *StubService) listThreads(rw gohttp.ResponseWriter, req *gohttp.Request) {
	service.Lock()
	threads := make([]api.Thread, len(service.threads))
	copy(threads, service.threads)
	service.Unlock()

	sendJson(rw, gohttp.StatusOK, threads)
}

func (service *StubService) getThread(rw gohttp.ResponseWriter, req *gohttp.Request) {
	id := mux.Vars(req)["id"]

	service.Lock()
	defer service.Unlock()

	for _, thread := range service.threads {
		if thread.ID == id {
			sendJson(rw, gohttp.StatusOK, thread)
			return
		}
	}

	gohttp.NotFound(rw, req)
}

func (service *StubService) putThread(rw gohttp.ResponseWriter, req *gohttp.Request) {
	id := mux.Vars(req)["id"]

	thread := api.Thread{}
	err := util.DecodeJson(&thread, req.Body)

	if err != nil {
		gohttp.Error(rw, err.Error(), gohttp.StatusBadRequest)
		return
	}

	// The path owns the identity.
	thread.ID = id

	service.Lock()
	defer service.Unlock()

	for i, existing := range service.threads {
		if existing.ID == id {
			service.threads[i] = thread
			rw.WriteHeader(gohttp.StatusNoContent)
			return
		}
	}

	service.threads = append(service.threads, thread)
	rw.WriteHeader(gohttp.StatusNoContent)
}

func (service *StubService) removeThread(rw gohttp.ResponseWriter, req *gohttp.Request) {
	id := mux.Vars(req)["id"]

	service.Lock()
	defer service.Unlock()

	for i, thread := range service.threads {
		if thread.ID == id {
			service.threads = append(service.threads[:i], service.threads[i+1:]...)
			rw.WriteHeader(gohttp.StatusNoContent)
			return
		}
	}

	gohttp.NotFound(rw, req)
}

func (service *StubService) renameThread(rw gohttp.ResponseWriter, req *gohttp.Request) {
	id := mux.Vars(req)["id"]

	body, err := ioutil.ReadAll(req.Body)

	if err != nil || len(body) == 0 {
		gohttp.Error(rw, "Expected new name in request body", gohttp.StatusBadRequest)
		return
	}

	service.Lock()
	defer service.Unlock()

	for i, thread := range service.threads {
		if thread.ID == id {
			service.threads[i].Name = string(body)
			rw.WriteHeader(gohttp.StatusNoContent)
			return
		}
	}

	gohttp.NotFound(rw, req)
}

func (service *StubService) threadPeers(rw gohttp.ResponseWriter, req *gohttp.Request) {
	id := mux.Vars(req)["id"]

	service.Lock()
	defer service.Unlock()

	for _, thread := range service.threads {
		if thread.ID == id {
			contacts := []api.Contact{
				{ID: "stub-account", Address: "stub-account-address", Name: "stub"},
			}

			for _, addr := range thread.Whitelist {
				contacts = append(contacts, api.Contact{ID: addr, Address: addr})
			}

			sendJson(rw, gohttp.StatusOK, contacts)
			return
		}
	}

	gohttp.NotFound(rw, req)
}

func (service *StubService) addSchema(rw gohttp.ResponseWriter, req *gohttp.Request) {
	node := api.SchemaNode{}
	err := util.DecodeJson(&node, req.Body)

	if err != nil {
		gohttp.Error(rw, err.Error(), gohttp.StatusBadRequest)
		return
	}

	hash, err := service.storeSchema(node)

	if err != nil {
		serviceError(rw, err)
		return
	}

	sendJson(rw, gohttp.StatusCreated, schemaReceipt{Hash: hash})
}

func (service *StubService) listDefaultSchemas(rw gohttp.ResponseWriter, req *gohttp.Request) {
	names := []string{}

	for name := range defaultSchemas {
		names = append(names, name)
	}

	sendJson(rw, gohttp.StatusOK, names)
}

func (service *StubService) addDefaultSchema(rw gohttp.ResponseWriter, req *gohttp.Request) {
	name := mux.Vars(req)["name"]

	node, ok := defaultSchemas[name]

	if !ok {
		gohttp.NotFound(rw, req)
		return
	}

	hash, err := service.storeSchema(node)

	if err != nil {
		serviceError(rw, err)
		return
	}

	sendJson(rw, gohttp.StatusCreated, schemaReceipt{Hash: hash})
}

// storeSchema is content addressed, so storing twice returns the same hash.
func (service *StubService) storeSchema(node api.SchemaNode) (string, error) {
	bs, err := json.Marshal(node)

	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(bs)
	hash := util.EncodeBase58(sum[:])

	service.Lock()
	service.schemas[hash] = node
	service.Unlock()

	return hash, nil
}

func sendJson(rw gohttp.ResponseWriter, status int, message interface{}) {
	rw.Header().Set(CONTENT_TYPE, MIME_JSON)
	rw.WriteHeader(status)

	err := util.EncodeJson(message, rw)

	if err != nil {
		log.Error("Error sending response: %v", err)
	}
}

func serviceError(rw gohttp.ResponseWriter, err error) {
	log.Error("Stub service error: %v", err)
	gohttp.Error(rw, err.Error(), gohttp.StatusInternalServerError)
}

func splitComma(joined string) []string {
	parts := []string{}

	for _, part := range strings.Split(joined, ",") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}

const __THREAD_ID_LENGTH = 16
