// Command uekit generates Unreal Engine helper snippets from the terminal or
// serves the tools page over HTTP.
package main

import (
	"context"
	"os"

	"github.com/goliatone/go-uekit/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background(), os.Args[1:]))
}
