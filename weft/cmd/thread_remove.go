// Copyright © 2019 the weft authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// threadRemoveCmd represents the thread remove command
var threadRemoveCmd = &cobra.Command{
	Use:   "remove [thread-id]",
	Short: "Remove a thread by ID or key",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && removeKey == "" {
			die(errors.New("Expected a thread ID or --key"))
		}

		client := makeThreadsClient()

		var removed bool
		var err error

		if len(args) > 0 {
			removed, err = client.Remove(args[0])
		} else {
			removed, err = client.RemoveByKey(removeKey)
		}

		if err != nil {
			die(err)
		}

		if removed {
			fmt.Println("Removed.")
		} else {
			fmt.Println("Nothing removed.")
		}
	},
}

var removeKey string

func init() {
	threadCmd.AddCommand(threadRemoveCmd)

	threadRemoveCmd.Flags().StringVar(&removeKey, "key", "", "Remove the first thread with this key")
}
