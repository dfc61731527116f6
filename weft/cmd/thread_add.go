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
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/weftwork/weft/api"
	"github.com/weftwork/weft/cli"
)

// threadAddCmd represents the thread add command
var threadAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a thread",
	Long: `Create a thread on the daemon.  The schema may be a built-in default
name, an existing content hash, or a JSON file given with --schema-file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := makeThreadsClient()

		options := api.AddOptions{
			Schema:    readSchemaRef(),
			Key:       threadKey,
			Whitelist: threadWhitelist,
		}

		if threadTypeText != "" {
			threadType, err := api.ParseThreadType(threadTypeText)

			if err != nil {
				die(err)
			}

			options.Type = threadType
		}

		if threadSharingText != "" {
			sharing, err := api.ParseThreadSharing(threadSharingText)

			if err != nil {
				die(err)
			}

			options.Sharing = sharing
		}

		thread, err := client.Add(args[0], options)

		if err != nil {
			die(err)
		}

		outputThreads([]api.Thread{thread})
	},
}

var threadKey string
var threadTypeText string
var threadSharingText string
var threadWhitelist []string
var threadSchema string
var threadSchemaFile string

func init() {
	threadCmd.AddCommand(threadAddCmd)

	threadAddCmd.Flags().StringVar(&threadKey, "key", "", "Idempotency key")
	threadAddCmd.Flags().StringVar(&threadTypeText, "type", "", "Thread type: private|read_only|public|open")
	threadAddCmd.Flags().StringVar(&threadSharingText, "sharing", "", "Thread sharing: not_shared|invite_only|shared")
	threadAddCmd.Flags().StringSliceVar(&threadWhitelist, "whitelist", []string{}, "Comma separated list of peer addresses")
	threadAddCmd.Flags().StringVar(&threadSchema, "schema", "", "Default schema name or content hash")
	threadAddCmd.Flags().StringVar(&threadSchemaFile, "schema-file", "", "Path to a JSON schema file")
}

func readSchemaRef() api.SchemaRef {
	if threadSchemaFile != "" {
		bs, err := ioutil.ReadFile(threadSchemaFile)

		if err != nil {
			die(err)
		}

		node := api.SchemaNode{}
		err = json.Unmarshal(bs, &node)

		if err != nil {
			die(err)
		}

		return api.InlineSchema(node)
	}

	if threadSchema != "" {
		return api.SchemaByRef(threadSchema)
	}

	return api.NoSchema()
}

func outputThreads(threads []api.Thread) {
	err := cli.PrintThreads(os.Stdout, threads)

	if err != nil {
		die(err)
	}
}
