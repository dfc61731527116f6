package api

import (
	"testing"

	"github.com/weftwork/weft/internal/testutil"
)

func TestParseThreadType(t *testing.T) {
	for _, threadType := range []ThreadType{THREAD_PRIVATE, THREAD_READ_ONLY, THREAD_PUBLIC, THREAD_OPEN} {
		parsed, err := ParseThreadType(threadType.String())

		testutil.AssertVerboseErrorIsNil(t, err)
		testutil.AssertEquals(t, "Parse round trip failed", threadType, parsed)
	}

	parsed, err := ParseThreadType("OPEN")

	testutil.AssertVerboseErrorIsNil(t, err)
	testutil.AssertEquals(t, "Expected case insensitive parse", THREAD_OPEN, parsed)

	_, err = ParseThreadType("bogus")

	testutil.AssertNonNil(t, err)
}

func TestParseThreadSharing(t *testing.T) {
	for _, sharing := range []ThreadSharing{SHARING_NOT_SHARED, SHARING_INVITE_ONLY, SHARING_SHARED} {
		parsed, err := ParseThreadSharing(sharing.String())

		testutil.AssertVerboseErrorIsNil(t, err)
		testutil.AssertEquals(t, "Parse round trip failed", sharing, parsed)
	}

	_, err := ParseThreadSharing("bogus")

	testutil.AssertNonNil(t, err)
}

func TestThreadEquals(t *testing.T) {
	const SIZE = 10

	for i := 0; i < SIZE; i++ {
		thread := GenThread(testutil.Rand(), SIZE)

		testutil.Assert(t, "Expected Thread equality", thread.Equals(thread))

		other := thread
		other.Name = thread.Name + "x"

		testutil.Assert(t, "Unexpected Thread equality", !thread.Equals(other))
	}
}

func TestSchemaRef(t *testing.T) {
	none := NoSchema()

	testutil.Assert(t, "Expected none", none.IsNone())

	node := SchemaNode{Name: "custom"}
	inline := InlineSchema(node)

	actualNode, ok := inline.Inline()
	testutil.Assert(t, "Expected inline", ok)
	testutil.AssertEquals(t, "Unexpected node", node, actualNode)
	testutil.Assert(t, "Inline is not none", !inline.IsNone())

	_, ok = inline.Ref()
	testutil.Assert(t, "Inline is not a ref", !ok)

	ref := SchemaByRef("media")

	actualRef, ok := ref.Ref()
	testutil.Assert(t, "Expected ref", ok)
	testutil.AssertEquals(t, "Unexpected ref", "media", actualRef)
	testutil.Assert(t, "Ref is not none", !ref.IsNone())
}
