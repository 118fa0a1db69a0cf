package transmission_test

import (
	"context"
	"fmt"
	"os"

	transmission "github.com/jfxdev/go-transmission"
)

// Runs against a live daemon only when TURL is set, e.g.
// TURL=http://localhost:9091/transmission/rpc TUSER=admin TPWD=secret go test ./examples/
func ExampleClient_TorrentGet() {
	if os.Getenv("TURL") == "" {
		fmt.Println("skipped")
		// Output: skipped
		return
	}

	client := transmission.WithAuth(os.Getenv("TURL"), os.Getenv("TUSER"), os.Getenv("TPWD"))

	resp, err := client.TorrentGet(context.Background(),
		[]transmission.TorrentGetField{transmission.FieldID, transmission.FieldName})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, t := range resp.Arguments.Torrents {
		fmt.Println(t.Name)
	}
}
