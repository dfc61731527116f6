package mock_weft

import (
	gohttp "net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/h2non/gock"

	"github.com/weftwork/weft/api"
	"github.com/weftwork/weft/http"
	"github.com/weftwork/weft/internal/testutil"
)

func TestClientAddDefaults(t *testing.T) {
	defer gock.Off()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := api.Thread{
		ID:      "abc123",
		Name:    "chat",
		Type:    api.THREAD_PRIVATE,
		Sharing: api.SHARING_NOT_SHARED,
	}

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Post(TEST_THREADS_ENDPOINT + "/chat")
	expect.AddMatcher(matchQuery(map[string]string{
		"schema":    "",
		"key":       "",
		"type":      "private",
		"sharing":   "not_shared",
		"whitelist": "",
	}))
	expect.Reply(201).JSON(expected)

	// No schema argument means no schema resolution calls.
	client := makeTestThreadsClient(t, NewMockSchemasClient(ctrl))

	actual, err := client.Add("chat", api.AddOptions{})

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Unexpected thread", expected.Equals(actual))
}

func TestClientAddInlineSchema(t *testing.T) {
	defer gock.Off()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const schemaHash = "QmSchemaHash"
	node := api.SchemaNode{Name: "custom", Mill: "/json"}

	schemas := NewMockSchemasClient(ctrl)
	schemas.EXPECT().Add(node).Return(schemaHash, nil)

	expected := api.Thread{ID: "abc123", Name: "pics", Schema: schemaHash}

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Post(TEST_THREADS_ENDPOINT + "/pics")
	expect.MatchParam("schema", schemaHash)
	expect.Reply(201).JSON(expected)

	client := makeTestThreadsClient(t, schemas)

	actual, err := client.Add("pics", api.AddOptions{Schema: api.InlineSchema(node)})

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertEquals(t, "Unexpected schema hash", schemaHash, actual.Schema)
}

func TestClientAddDefaultSchemaName(t *testing.T) {
	defer gock.Off()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	const schemaHash = "QmMediaHash"

	schemas := NewMockSchemasClient(ctrl)
	schemas.EXPECT().HasDefault("media").Return(true, nil)
	schemas.EXPECT().AddDefault("media").Return(schemaHash, nil)

	expected := api.Thread{ID: "abc123", Name: "pics", Schema: schemaHash}

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Post(TEST_THREADS_ENDPOINT + "/pics")
	expect.MatchParam("schema", schemaHash)
	expect.Reply(201).JSON(expected)

	client := makeTestThreadsClient(t, schemas)

	actual, err := client.Add("pics", api.AddOptions{Schema: api.SchemaByRef("media")})

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertEquals(t, "Unexpected schema hash", schemaHash, actual.Schema)
}

func TestClientAddSchemaPassthrough(t *testing.T) {
	defer gock.Off()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Not a known default, so the string passes through as a content hash.
	const schemaHash = "QmNotADefaultName"

	schemas := NewMockSchemasClient(ctrl)
	schemas.EXPECT().HasDefault(schemaHash).Return(false, nil)

	expected := api.Thread{ID: "abc123", Name: "pics", Schema: schemaHash}

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Post(TEST_THREADS_ENDPOINT + "/pics")
	expect.MatchParam("schema", schemaHash)
	expect.Reply(201).JSON(expected)

	client := makeTestThreadsClient(t, schemas)

	actual, err := client.Add("pics", api.AddOptions{Schema: api.SchemaByRef(schemaHash)})

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertEquals(t, "Unexpected schema hash", schemaHash, actual.Schema)
}

func TestClientAddRequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := makeTestThreadsClient(t, NewMockSchemasClient(ctrl))

	_, err := client.Add("", api.AddOptions{})

	testutil.AssertNonNil(t, err)
}

func TestClientAddOrUpdate(t *testing.T) {
	defer gock.Off()

	info := api.Thread{ID: "abc123", Name: "restored", Key: "backup-key"}

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Put(TEST_THREADS_ENDPOINT + "/abc123")
	expect.JSON(info)
	expect.Reply(204)

	client := makeTestThreadsClient(t, nil)

	err := <-client.AddOrUpdate("abc123", info)

	testutil.AssertVerboseErrorIsNil(t, err)
}

func TestClientAddOrUpdateFailure(t *testing.T) {
	defer gock.Off()

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Put(TEST_THREADS_ENDPOINT + "/abc123")
	expect.Reply(500)

	client := makeTestThreadsClient(t, nil)

	err := <-client.AddOrUpdate("abc123", api.Thread{ID: "abc123"})

	testutil.AssertNonNil(t, err)
}

func TestClientGet(t *testing.T) {
	defer gock.Off()

	expected := api.Thread{ID: "abc123", Name: "chat", Type: api.THREAD_OPEN, Sharing: api.SHARING_SHARED}

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Get(TEST_THREADS_ENDPOINT + "/abc123")
	expect.Reply(200).JSON(expected)

	client := makeTestThreadsClient(t, nil)

	actual, err := client.Get("abc123")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Unexpected thread", expected.Equals(actual))
}

func TestClientGetNotFound(t *testing.T) {
	defer gock.Off()

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Get(TEST_THREADS_ENDPOINT + "/missing")
	expect.Reply(404)

	client := makeTestThreadsClient(t, nil)

	_, err := client.Get("missing")

	testutil.AssertNonNil(t, err)
}

func TestClientGetByKey(t *testing.T) {
	defer gock.Off()

	threads := []api.Thread{
		{ID: "a", Name: "first", Key: "k"},
		{ID: "b", Name: "second", Key: "k"},
		{ID: "c", Name: "third", Key: "other"},
	}

	expectList(threads)

	client := makeTestThreadsClient(t, nil)

	match, found, err := client.GetByKey("k")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected a match", found)
	testutil.AssertEquals(t, "Expected first match in list order", "a", match.ID)

	expectList(threads)

	_, found, err = client.GetByKey("missing")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected no match", !found)
}

func TestClientGetByName(t *testing.T) {
	defer gock.Off()

	threads := []api.Thread{
		{ID: "a", Name: "chat"},
		{ID: "b", Name: "pics"},
		{ID: "c", Name: "chat"},
	}

	expectList(threads)

	client := makeTestThreadsClient(t, nil)

	matches, err := client.GetByName("chat")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertLenEquals(t, 2, matches)
	testutil.AssertEquals(t, "Expected list order preserved", "a", matches[0].ID)
	testutil.AssertEquals(t, "Expected list order preserved", "c", matches[1].ID)

	expectList(threads)

	matches, err = client.GetByName("missing")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertLenEquals(t, 0, matches)
}

func TestClientList(t *testing.T) {
	defer gock.Off()

	size := testutil.GenCountRange(testutil.Rand(), 1, 10, 1.0)
	threads := make([]api.Thread, size)
	for i := 0; i < size; i++ {
		threads[i] = api.GenThread(testutil.Rand(), 10)
	}

	expectList(threads)

	client := makeTestThreadsClient(t, nil)

	actual, err := client.List()

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertLenEquals(t, size, actual)

	for i, thread := range threads {
		testutil.Assert(t, "Unexpected thread in list", thread.Equals(actual[i]))
	}
}

func TestClientRemove(t *testing.T) {
	defer gock.Off()

	client := makeTestThreadsClient(t, nil)

	for _, status := range []int{204, 404, 500} {
		expect := gock.New(TEST_SERVER_ADDR)
		expect.Delete(TEST_THREADS_ENDPOINT + "/abc123")
		expect.Reply(status)

		removed, err := client.Remove("abc123")

		testutil.AssertVerboseErrorIsNil(t, err)
		testutil.AssertEquals(t, "Unexpected Remove outcome", status == 204, removed)
	}
}

func TestClientRemoveByKey(t *testing.T) {
	defer gock.Off()

	threads := []api.Thread{
		{ID: "abc123", Name: "chat", Key: "k"},
	}

	expectList(threads)

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Delete(TEST_THREADS_ENDPOINT + "/abc123")
	expect.Reply(204)

	client := makeTestThreadsClient(t, nil)

	removed, err := client.RemoveByKey("k")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected removal", removed)
}

func TestClientRemoveByKeyMissing(t *testing.T) {
	defer gock.Off()

	// Only the list endpoint is stubbed: a DELETE would be an error.
	expectList([]api.Thread{})

	client := makeTestThreadsClient(t, nil)

	removed, err := client.RemoveByKey("missing")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.Assert(t, "Expected no removal", !removed)
}

func TestClientRename(t *testing.T) {
	defer gock.Off()

	client := makeTestThreadsClient(t, nil)

	for _, status := range []int{204, 404, 500} {
		expect := gock.New(TEST_SERVER_ADDR)
		expect.Put(TEST_THREADS_ENDPOINT + "/abc123/name")
		expect.BodyString("new-name")
		expect.Reply(status)

		renamed, err := client.Rename("abc123", "new-name")

		testutil.AssertVerboseErrorIsNil(t, err)
		testutil.AssertEquals(t, "Unexpected Rename outcome", status == 204, renamed)
	}
}

func TestClientPeers(t *testing.T) {
	defer gock.Off()

	expected := []api.Contact{
		{ID: "peer1", Address: "addr1"},
		{ID: "peer2", Address: "addr2", Name: "two"},
	}

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Get(TEST_THREADS_ENDPOINT + "/abc123/peers")
	expect.Reply(200).JSON(expected)

	client := makeTestThreadsClient(t, nil)

	actual, err := client.Peers("abc123")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertEquals(t, "Unexpected contacts", expected, actual)
}

func TestClientPeersDefault(t *testing.T) {
	defer gock.Off()

	expect := gock.New(TEST_SERVER_ADDR)
	expect.Get(TEST_THREADS_ENDPOINT + "/default/peers")
	expect.Reply(200).JSON([]api.Contact{})

	client := makeTestThreadsClient(t, nil)

	contacts, err := client.Peers("")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertLenEquals(t, 0, contacts)
}

func makeTestThreadsClient(t *testing.T, schemas api.SchemasClient) api.ThreadsClient {
	options := http.ClientOptions{
		ServerAddr: TEST_SERVER_ADDR,
		Schemas:    schemas,
	}

	client, err := http.MakeThreadsClient(options)
	panicOnBadInit(err)

	return client
}

func expectList(threads []api.Thread) {
	expect := gock.New(TEST_SERVER_ADDR)
	expect.Get(TEST_THREADS_ENDPOINT + "$")
	expect.Reply(200).JSON(threads)
}

func matchQuery(wanted map[string]string) gock.MatchFunc {
	return func(req *gohttp.Request, ereq *gock.Request) (bool, error) {
		query := req.URL.Query()

		for key, value := range wanted {
			sent, present := query[key]

			if !present {
				return false, nil
			}

			if sent[0] != value {
				return false, nil
			}
		}

		return true, nil
	}
}

func panicOnBadInit(err error) {
	if err != nil {
		panic(err)
	}
}

const TEST_SERVER_ADDR = "https://weft.example"
const TEST_THREADS_ENDPOINT = "/api/v0/threads"
