package http

import (
	"bytes"
	gohttp "net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/weftwork/weft/api"
	"github.com/weftwork/weft/internal/util"
	"github.com/weftwork/weft/log"
)

// DEFAULT_THREAD is the daemon's own thread, targeted by Peers when no
// thread ID is given.
const DEFAULT_THREAD = "default"

type threadsClient struct {
	backend *backendClient
	schemas api.SchemasClient
}

// MakeThreadsClient builds an api.ThreadsClient over the daemon at
// options.ServerAddr.
func MakeThreadsClient(options ClientOptions) (api.ThreadsClient, error) {
	backend, err := makeBackendClient(options)

	if err != nil {
		return nil, errors.Wrap(err, "MakeThreadsClient failed")
	}

	schemas := options.Schemas

	if schemas == nil {
		schemas = &schemasClient{backend: backend}
	}

	return &threadsClient{backend: backend, schemas: schemas}, nil
}

func (client *threadsClient) Add(name string, options api.AddOptions) (api.Thread, error) {
	const failMsg = "threads Add failed"

	if name == "" {
		return api.Thread{}, errors.New("Cowardly refusing to add thread without a name")
	}

	schemaHash, err := client.resolveSchema(options.Schema)

	if err != nil {
		return api.Thread{}, errors.Wrap(err, failMsg)
	}

	threadType := options.Type
	if threadType == "" {
		threadType = api.THREAD_PRIVATE
	}

	sharing := options.Sharing
	if sharing == "" {
		sharing = api.SHARING_NOT_SHARED
	}

	query := url.Values{}
	query.Set("schema", schemaHash)
	query.Set("key", options.Key)
	query.Set("type", threadType.String())
	query.Set("sharing", sharing.String())
	query.Set("whitelist", strings.Join(options.Whitelist, ","))

	path := client.threadPath(name) + "?" + query.Encode()
	resp, err := client.backend.sendPost(path, MIME_JSON, nil)

	if err != nil {
		return api.Thread{}, errors.Wrap(err, failMsg)
	}

	thread := api.Thread{}
	err = decodeJson(resp, &thread)

	if err != nil {
		return api.Thread{}, errors.Wrap(err, failMsg)
	}

	return thread, nil
}

// resolveSchema is the three way split over the SchemaRef variant: inline
// schemas are stored first, strings resolve as a default schema name when
// the daemon knows one, otherwise they pass through as a content hash
// without validation.  No schema means an empty field and the daemon picks.
func (client *threadsClient) resolveSchema(schema api.SchemaRef) (string, error) {
	if node, ok := schema.Inline(); ok {
		return client.schemas.Add(node)
	}

	if ref, ok := schema.Ref(); ok {
		isDefault, err := client.schemas.HasDefault(ref)

		if err != nil {
			return "", err
		}

		if isDefault {
			return client.schemas.AddDefault(ref)
		}

		return ref, nil
	}

	return "", nil
}

func (client *threadsClient) AddOrUpdate(threadID string, info api.Thread) <-chan error {
	result := make(chan error, 1)

	go func() {
		result <- client.putThread(threadID, info)
	}()

	return result
}

func (client *threadsClient) putThread(threadID string, info api.Thread) error {
	const failMsg = "threads AddOrUpdate failed"

	if threadID == "" {
		return errors.New("Cowardly refusing to put thread without an ID")
	}

	buff := &bytes.Buffer{}
	err := util.EncodeJson(info, buff)

	if err != nil {
		return errors.Wrap(err, failMsg)
	}

	resp, err := client.backend.sendPut(client.threadPath(threadID), MIME_JSON, buff)

	if err != nil {
		log.Warn("Unawaited thread put failed: %v", err)
		return errors.Wrap(err, failMsg)
	}

	defer drainResponse(resp)

	if !isSuccess(resp.StatusCode) {
		err := responseError(resp)
		log.Warn("Unawaited thread put failed: %v", err)
		return errors.Wrap(err, failMsg)
	}

	return nil
}

func (client *threadsClient) Get(threadID string) (api.Thread, error) {
	const failMsg = "threads Get failed"

	if threadID == "" {
		return api.Thread{}, errors.New("Cowardly refusing to get thread without an ID")
	}

	resp, err := client.backend.sendGet(client.threadPath(threadID))

	if err != nil {
		return api.Thread{}, errors.Wrap(err, failMsg)
	}

	thread := api.Thread{}
	err = decodeJson(resp, &thread)

	if err != nil {
		return api.Thread{}, errors.Wrap(err, failMsg)
	}

	return thread, nil
}

func (client *threadsClient) GetByKey(key string) (api.Thread, bool, error) {
	threads, err := client.List()

	if err != nil {
		return api.Thread{}, false, errors.Wrap(err, "threads GetByKey failed")
	}

	for _, thread := range threads {
		if thread.Key == key {
			return thread, true, nil
		}
	}

	return api.Thread{}, false, nil
}

func (client *threadsClient) GetByName(name string) ([]api.Thread, error) {
	threads, err := client.List()

	if err != nil {
		return nil, errors.Wrap(err, "threads GetByName failed")
	}

	matches := []api.Thread{}

	for _, thread := range threads {
		if thread.Name == name {
			matches = append(matches, thread)
		}
	}

	return matches, nil
}

func (client *threadsClient) List() ([]api.Thread, error) {
	const failMsg = "threads List failed"

	resp, err := client.backend.sendGet(client.backend.ThreadsEndpoint)

	if err != nil {
		return nil, errors.Wrap(err, failMsg)
	}

	threads := []api.Thread{}
	err = decodeJson(resp, &threads)

	if err != nil {
		return nil, errors.Wrap(err, failMsg)
	}

	return threads, nil
}

func (client *threadsClient) Remove(threadID string) (bool, error) {
	const failMsg = "threads Remove failed"

	if threadID == "" {
		return false, errors.New("Cowardly refusing to remove thread without an ID")
	}

	resp, err := client.backend.sendDelete(client.threadPath(threadID))

	if err != nil {
		return false, errors.Wrap(err, failMsg)
	}

	return statusOnly(resp, gohttp.StatusNoContent), nil
}

func (client *threadsClient) RemoveByKey(key string) (bool, error) {
	const failMsg = "threads RemoveByKey failed"

	thread, found, err := client.GetByKey(key)

	if err != nil {
		return false, errors.Wrap(err, failMsg)
	}

	if !found {
		return false, nil
	}

	removed, err := client.Remove(thread.ID)

	if err != nil {
		return false, errors.Wrap(err, failMsg)
	}

	return removed, nil
}

// Rename sends the new name as the request body.
func (client *threadsClient) Rename(threadID, name string) (bool, error) {
	const failMsg = "threads Rename failed"

	if threadID == "" {
		return false, errors.New("Cowardly refusing to rename thread without an ID")
	}

	body := strings.NewReader(name)
	resp, err := client.backend.sendPut(client.threadPath(threadID)+"/name", MIME_TEXT, body)

	if err != nil {
		return false, errors.Wrap(err, failMsg)
	}

	return statusOnly(resp, gohttp.StatusNoContent), nil
}

func (client *threadsClient) Peers(threadID string) ([]api.Contact, error) {
	const failMsg = "threads Peers failed"

	if threadID == "" {
		threadID = DEFAULT_THREAD
	}

	resp, err := client.backend.sendGet(client.threadPath(threadID) + "/peers")

	if err != nil {
		return nil, errors.Wrap(err, failMsg)
	}

	contacts := []api.Contact{}
	err = decodeJson(resp, &contacts)

	if err != nil {
		return nil, errors.Wrap(err, failMsg)
	}

	return contacts, nil
}

func (client *threadsClient) threadPath(segment string) string {
	return client.backend.ThreadsEndpoint + "/" + url.PathEscape(segment)
}
