package http

import (
	"net/http/httptest"
	"testing"

	"github.com/weftwork/weft/api"
	"github.com/weftwork/weft/internal/testutil"
)

func TestStubThreadLifecycle(t *testing.T) {
	client, server := makeStubFixture(t)
	defer server.Close()

	created, err := client.Add("chat", api.AddOptions{
		Type:    api.THREAD_OPEN,
		Sharing: api.SHARING_SHARED,
	})

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected thread ID", created.ID != "")

	threads, err := client.List()

	testutil.AssertVerboseErrorIsNil(t, err)

	var listed api.Thread
	found := false
	for _, thread := range threads {
		if thread.Name == "chat" {
			listed = thread
			found = true
		}
	}

	testutil.Assert(t, "Expected chat in list", found)
	testutil.AssertEquals(t, "Unexpected type", api.THREAD_OPEN, listed.Type)
	testutil.AssertEquals(t, "Unexpected sharing", api.SHARING_SHARED, listed.Sharing)

	fetched, err := client.Get(created.ID)

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Get should round trip", created.Equals(fetched))

	renamed, err := client.Rename(created.ID, "banter")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected rename", renamed)

	matches, err := client.GetByName("banter")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertLenEquals(t, 1, matches)

	removed, err := client.Remove(created.ID)

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected removal", removed)

	removed, err = client.Remove(created.ID)

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected no second removal", !removed)
}

func TestStubThreadKeys(t *testing.T) {
	client, server := makeStubFixture(t)
	defer server.Close()

	_, err := client.Add("backup", api.AddOptions{Key: "backup-key"})
	testutil.AssertVerboseErrorIsNil(t, err)

	match, found, err := client.GetByKey("backup-key")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected key match", found)
	testutil.AssertEquals(t, "Unexpected name", "backup", match.Name)

	removed, err := client.RemoveByKey("backup-key")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected removal by key", removed)

	removed, err = client.RemoveByKey("backup-key")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected no removal for missing key", !removed)
}

func TestStubAddOrUpdate(t *testing.T) {
	client, server := makeStubFixture(t)
	defer server.Close()

	info := api.Thread{
		ID:      "restored123",
		Name:    "restored",
		Key:     "restore-key",
		Type:    api.THREAD_PRIVATE,
		Sharing: api.SHARING_NOT_SHARED,
	}

	err := <-client.AddOrUpdate(info.ID, info)
	testutil.AssertVerboseErrorIsNil(t, err)

	fetched, err := client.Get(info.ID)

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "AddOrUpdate should round trip", info.Equals(fetched))

	// Wholesale overwrite of the existing record.
	info.Name = "restored-again"
	err = <-client.AddOrUpdate(info.ID, info)
	testutil.AssertVerboseErrorIsNil(t, err)

	fetched, err = client.Get(info.ID)

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertEquals(t, "Unexpected name after overwrite", "restored-again", fetched.Name)
}

func TestStubSchemaResolution(t *testing.T) {
	client, server := makeStubFixture(t)
	defer server.Close()

	byDefault, err := client.Add("pics", api.AddOptions{Schema: api.SchemaByRef("media")})

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected resolved schema hash", byDefault.Schema != "")
	testutil.Assert(t, "Expected hash, not default name", byDefault.Schema != "media")

	node := defaultSchemas["media"]
	byInline, err := client.Add("pics2", api.AddOptions{Schema: api.InlineSchema(node)})

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertEquals(t, "Schema storage should be content addressed", byDefault.Schema, byInline.Schema)

	byHash, err := client.Add("pics3", api.AddOptions{Schema: api.SchemaByRef(byDefault.Schema)})

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertEquals(t, "Expected hash passthrough", byDefault.Schema, byHash.Schema)
}

func TestStubDefaultThreadPeers(t *testing.T) {
	client, server := makeStubFixture(t)
	defer server.Close()

	contacts, err := client.Peers("")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected daemon account contact", len(contacts) > 0)
}

func TestStubWhitelistPeers(t *testing.T) {
	client, server := makeStubFixture(t)
	defer server.Close()

	whitelist := []string{"peer-one", "peer-two"}
	created, err := client.Add("private-chat", api.AddOptions{Whitelist: whitelist})

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertEquals(t, "Expected whitelist stored", whitelist, created.Whitelist)

	contacts, err := client.Peers(created.ID)

	testutil.AssertVerboseErrorIsNil(t, err)
	// Account contact plus one per whitelist address.
	testutil.AssertLenEquals(t, 3, contacts)
}

func makeStubFixture(t *testing.T) (api.ThreadsClient, *httptest.Server) {
	service := MakeStubService()
	server := httptest.NewServer(service.Handler())

	client, err := MakeThreadsClient(ClientOptions{ServerAddr: server.URL})

	if err != nil {
		server.Close()
		t.Fatal(err)
	}

	return client, server
}
