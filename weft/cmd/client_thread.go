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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	lib "github.com/weftwork/weft"
	"github.com/weftwork/weft/api"
)

// threadCmd represents the thread command
var threadCmd = &cobra.Command{
	Use:   "thread",
	Short: "Thread operations",
	Long: `Create, inspect, rename, and remove the daemon's threads.  To see
all threads, do:

	weft client thread list`,
	Run: func(cmd *cobra.Command, args []string) {
		err := cmd.Help()

		if err != nil {
			die(err)
		}
	},
}

func init() {
	clientCmd.AddCommand(threadCmd)
}

// The flag is bound to viper, so config file values apply unless the flag
// is given.
func makeThreadsClient() api.ThreadsClient {
	client, err := lib.MakeClient(viper.GetString("server"))

	if err != nil {
		die(err)
	}

	return client
}
