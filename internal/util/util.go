package util

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

func Imin(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func LinearContains(sl []string, term string) bool {
	for _, s := range sl {
		if s == term {
			return true
		}
	}

	return false
}

func WriteBytes(bs []byte, w io.Writer) error {
	written, err := w.Write(bs)

	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("write failed after %v bytes", written))
	}

	return nil
}

func EncodeJson(message interface{}, w io.Writer) error {
	const failMsg = "EncodeJson failed"
	bs, err := json.Marshal(message)

	if err != nil {
		return errors.Wrap(err, failMsg)
	}

	err = WriteBytes(bs, w)

	if err != nil {
		return errors.Wrap(err, failMsg)
	}

	return nil
}

func DecodeJson(message interface{}, r io.Reader) error {
	const failMsg = "DecodeJson failed"
	bs, err := ioutil.ReadAll(r)

	if err != nil {
		return errors.Wrap(err, failMsg)
	}

	return json.Unmarshal(bs, message)
}
