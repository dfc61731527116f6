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

	"github.com/weftwork/weft/api"
)

// threadGetCmd represents the thread get command
var threadGetCmd = &cobra.Command{
	Use:   "get [thread-id]",
	Short: "Fetch one thread by ID or key",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && getKey == "" {
			die(errors.New("Expected a thread ID or --key"))
		}

		client := makeThreadsClient()

		if len(args) > 0 {
			thread, err := client.Get(args[0])

			if err != nil {
				die(err)
			}

			outputThreads([]api.Thread{thread})
			return
		}

		thread, found, err := client.GetByKey(getKey)

		if err != nil {
			die(err)
		}

		if !found {
			fmt.Printf("No thread found with key '%s'\n", getKey)
			return
		}

		outputThreads([]api.Thread{thread})
	},
}

var getKey string

func init() {
	threadCmd.AddCommand(threadGetCmd)

	threadGetCmd.Flags().StringVar(&getKey, "key", "", "Find the first thread with this key")
}
