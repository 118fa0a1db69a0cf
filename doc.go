/*
Package transmission provides a typed client for the Transmission BitTorrent
daemon's JSON-RPC-over-HTTP API.

Highlights:
  - Automatic session-id handshake (X-Transmission-Session-Id)
  - Typed request/response envelopes with a closed set of payload shapes
  - Optional HTTP basic auth applied to every request
  - Optional session caching and bounded retries with exponential backoff

Quick start:

	import (
	    "context"
	    "log"

	    transmission "github.com/jfxdev/go-transmission"
	)

	func main() {
	    client := transmission.New("http://localhost:9091/transmission/rpc")

	    resp, err := client.TorrentGet(context.Background(),
	        []transmission.TorrentGetField{transmission.FieldID, transmission.FieldName})
	    if err != nil {
	        log.Fatal(err)
	    }
	    for _, t := range resp.Arguments.Torrents {
	        log.Println(t.ID, t.Name)
	    }
	}
*/
package transmission
