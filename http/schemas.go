package http

import (
	"bytes"
	"net/url"

	"github.com/pkg/errors"

	"github.com/weftwork/weft/api"
	"github.com/weftwork/weft/internal/util"
)

type schemasClient struct {
	backend *backendClient
}

// MakeSchemasClient builds an api.SchemasClient over the daemon at
// options.ServerAddr.
func MakeSchemasClient(options ClientOptions) (api.SchemasClient, error) {
	backend, err := makeBackendClient(options)

	if err != nil {
		return nil, errors.Wrap(err, "MakeSchemasClient failed")
	}

	return &schemasClient{backend: backend}, nil
}

// schemaReceipt is the daemon's answer to a schema store.
type schemaReceipt struct {
	Hash string `json:"hash"`
}

func (client *schemasClient) Add(node api.SchemaNode) (string, error) {
	const failMsg = "schemas Add failed"

	buff := &bytes.Buffer{}
	err := util.EncodeJson(node, buff)

	if err != nil {
		return "", errors.Wrap(err, failMsg)
	}

	resp, err := client.backend.sendPost(client.backend.SchemasEndpoint, MIME_JSON, buff)

	if err != nil {
		return "", errors.Wrap(err, failMsg)
	}

	receipt := schemaReceipt{}
	err = decodeJson(resp, &receipt)

	if err != nil {
		return "", errors.Wrap(err, failMsg)
	}

	return receipt.Hash, nil
}

func (client *schemasClient) HasDefault(name string) (bool, error) {
	const failMsg = "schemas HasDefault failed"

	resp, err := client.backend.sendGet(client.backend.SchemasEndpoint + "/defaults")

	if err != nil {
		return false, errors.Wrap(err, failMsg)
	}

	defaults := []string{}
	err = decodeJson(resp, &defaults)

	if err != nil {
		return false, errors.Wrap(err, failMsg)
	}

	return util.LinearContains(defaults, name), nil
}

func (client *schemasClient) AddDefault(name string) (string, error) {
	const failMsg = "schemas AddDefault failed"

	path := client.backend.SchemasEndpoint + "/defaults/" + url.PathEscape(name)
	resp, err := client.backend.sendPost(path, MIME_JSON, nil)

	if err != nil {
		return "", errors.Wrap(err, failMsg)
	}

	receipt := schemaReceipt{}
	err = decodeJson(resp, &receipt)

	if err != nil {
		return "", errors.Wrap(err, failMsg)
	}

	return receipt.Hash, nil
}
