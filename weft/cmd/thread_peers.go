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
	"os"

	"github.com/spf13/cobra"

	"github.com/weftwork/weft/cli"
)

// threadPeersCmd represents the thread peers command
var threadPeersCmd = &cobra.Command{
	Use:   "peers [thread-id]",
	Short: "List the peers of a thread",
	Long:  `List the peers of a thread.  Without an ID, targets the daemon's default thread.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := makeThreadsClient()

		threadID := ""
		if len(args) > 0 {
			threadID = args[0]
		}

		contacts, err := client.Peers(threadID)

		if err != nil {
			die(err)
		}

		err = cli.PrintContacts(os.Stdout, contacts)

		if err != nil {
			die(err)
		}
	},
}

func init() {
	threadCmd.AddCommand(threadPeersCmd)
}
