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
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	wefthttp "github.com/weftwork/weft/http"
	internalhttp "github.com/weftwork/weft/internal/http"
	"github.com/weftwork/weft/log"
)

// stubCmd represents the stub command
var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "In-memory stand-in for a weft daemon",
	Long: `The stub serves the daemon's threads and schemas REST surface from
memory.  Nothing replicates and nothing persists; it exists for development
and testing against a predictable endpoint.  To run it, do:

	weft stub serve`,
}

// stubServeCmd represents the stub serve command
var stubServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the stub daemon",
	Run: func(cmd *cobra.Command, args []string) {
		params := stubParameters(cmd)
		serveStub(*params.String("address"))
	},
}

var stubParams = &Parameters{}

func init() {
	RootCmd.AddCommand(stubCmd)
	stubCmd.AddCommand(stubServeCmd)

	stubServeCmd.Flags().StringVar(stubParams.String("address"), "address", __DEFAULT_STUB_ADDRESS, "Listen address")
}

// Config file values apply unless overridden on the command line.
func stubParameters(cmd *cobra.Command) *Parameters {
	if viper.IsSet(__STUB_ADDRESS_CONFIG_KEY) && !cmd.Flags().Changed("address") {
		fromConfig := &Parameters{}
		*fromConfig.String("address") = viper.GetString(__STUB_ADDRESS_CONFIG_KEY)
		return Merge(stubParams, fromConfig)
	}

	return stubParams
}

func serveStub(address string) {
	service := wefthttp.MakeStubService()

	closer, err := internalhttp.Serve(address, service.Handler())

	if err != nil {
		die(err)
	}

	log.Info("Stub daemon listening on %s", address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt

	close(closer)
}

const __DEFAULT_STUB_ADDRESS = "localhost:40600"
const __STUB_ADDRESS_CONFIG_KEY = "stub.address"
