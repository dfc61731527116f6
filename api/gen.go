package api

import (
	"math/rand"

	"github.com/weftwork/weft/internal/testutil"
)

var genThreadTypes = []ThreadType{
	THREAD_PRIVATE,
	THREAD_READ_ONLY,
	THREAD_PUBLIC,
	THREAD_OPEN,
}

var genThreadSharing = []ThreadSharing{
	SHARING_NOT_SHARED,
	SHARING_INVITE_ONLY,
	SHARING_SHARED,
}

func GenThread(rand *rand.Rand, size int) Thread {
	gen := Thread{}

	gen.ID = testutil.RandLettersRange(rand, 1, size)
	gen.Name = testutil.RandLettersRange(rand, 1, size)
	gen.Type = genThreadTypes[rand.Intn(len(genThreadTypes))]
	gen.Sharing = genThreadSharing[rand.Intn(len(genThreadSharing))]

	if rand.Float32() < 0.5 {
		gen.Key = testutil.RandKey(rand, size)
	}

	if rand.Float32() < 0.5 {
		gen.Schema = testutil.RandLettersRange(rand, 1, size)
	}

	whitelistCount := testutil.GenCount(rand, size, 0.3)
	for i := 0; i < whitelistCount; i++ {
		addr := testutil.RandLettersRange(rand, 1, size)
		gen.Whitelist = append(gen.Whitelist, addr)
	}

	return gen
}

func GenContact(rand *rand.Rand, size int) Contact {
	gen := Contact{}

	gen.ID = testutil.RandLettersRange(rand, 1, size)
	gen.Address = testutil.RandLettersRange(rand, 1, size)

	if rand.Float32() < 0.5 {
		gen.Name = testutil.RandLettersRange(rand, 1, size)
	}

	return gen
}
