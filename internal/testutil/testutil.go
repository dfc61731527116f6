package testutil

import (
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/weftwork/weft/log"
)

const __ALPHABET = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const __DIGITS = "0123456789"

const KEY_SYMS = __ALPHABET + __DIGITS

func RandKey(rand *rand.Rand, max int) string {
	return RandStr(rand, KEY_SYMS, 1, max)
}

func RandLetters(rand *rand.Rand, max int) string {
	return RandStr(rand, __ALPHABET, 0, max)
}

func RandLettersRange(rand *rand.Rand, min, max int) string {
	return RandStr(rand, __ALPHABET, min, max)
}

func RandStr(rand *rand.Rand, elements string, min, max int) string {
	count := rand.Intn(max - min)
	count += min
	parts := make([]string, count)

	for i := 0; i < count; i++ {
		index := rand.Intn(len(elements))
		b := elements[index]
		parts[i] = string([]byte{b})
	}

	return strings.Join(parts, "")
}

// Fudge to generate count of sample data.
func GenCount(rand *rand.Rand, size int, scale float32) int {
	return GenCountRange(rand, 0, size, scale)
}

// Fudge to generate count of sample data.
func GenCountRange(rand *rand.Rand, min, max int, scale float32) int {
	fudge := float32(1.0)
	mark := rand.Float32()
	if mark < 0.01 {
		fudge = 0
	} else if mark < 0.3 {
		fudge = 0.3
	} else if mark < 0.7 {
		fudge = 0.5
	} else if mark < 0.9 {
		fudge = 0.8
	}

	gen := int(fudge * float32(max) * scale)
	if gen < min {
		gen = min
	}
	return gen
}

func Trim(err error) string {
	msg := err.Error()

	const elipses = "..."

	if len(msg) < __TRIM_LENGTH+len(elipses) {
		return msg
	} else {
		return msg[:__TRIM_LENGTH] + elipses
	}
}

func Assert(t *testing.T, message string, isOk bool) {
	if !isOk {
		t.Error(message)
	}
}

func AssertNil(t *testing.T, x interface{}) {
	Assert(t, fmt.Sprintf("Expected nil value but received: %v", x), x == nil)
}

func AssertNonNil(t *testing.T, x interface{}) {
	Assert(t, fmt.Sprintf("Expected non nil value"), x != nil)
}

func AssertEquals(t *testing.T, message string, expected, actual interface{}) {
	same := reflect.DeepEqual(expected, actual)

	if !same {
		expectedType := reflect.TypeOf(expected)
		actualType := reflect.TypeOf(actual)
		t.Errorf("%s: expected '%v' (%v) but received '%v' (%v)", message, expected, expectedType, actual, actualType)
	}
}

func AssertVerboseErrorIsNil(t *testing.T, err error) {
	if err != nil {
		t.Error("Unexpected error:", Trim(err))
	}
}

func AssertLenEquals(t *testing.T, expected int, hasLen interface{}) {
	value := reflect.ValueOf(hasLen)
	actual := value.Len()

	if expected != actual {
		t.Errorf("Expected len %v but received %v", expected, actual)
	}
}

const __TRIM_LENGTH = 500

type randGen struct {
	rand *rand.Rand
	sync.Mutex
}

var __rand randGen

func Rand() *rand.Rand {
	__rand.Lock()
	if __rand.rand == nil {
		seed := time.Now().UnixNano()
		src := rand.NewSource(seed)
		__rand.rand = rand.New(src)
	}
	__rand.Unlock()

	return __rand.rand
}

// Logging on in test mode!
func init() {
	log.SetLevel(log.LOG_DEBUG)
}
