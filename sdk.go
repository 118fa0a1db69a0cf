package transmission

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/jfxdev/go-transmission/request"
	"github.com/pkg/errors"
)

// SessionGet returns the daemon's session settings.
func (c *Client) SessionGet(ctx context.Context) (*Response[SessionInfo], error) {
	return Call[SessionInfo](c, ctx, NewSessionGetRequest())
}

// TorrentGet returns the requested fields for all torrents.
func (c *Client) TorrentGet(ctx context.Context, fields []TorrentGetField) (*Response[Torrents], error) {
	return Call[Torrents](c, ctx, NewTorrentGetRequest(fields))
}

// TorrentAction applies an action verb to the given torrent ids.
func (c *Client) TorrentAction(ctx context.Context, action TorrentAction, ids []int64) (*Response[Nothing], error) {
	return Call[Nothing](c, ctx, NewTorrentActionRequest(action, ids))
}

// Call performs one full RPC exchange for an arbitrary request and decodes
// the response into the payload shape T. T must match the method being sent;
// the wire format carries no type tag to check against. The typed methods
// above are thin adapters over this entry point; use it directly to reach
// methods they do not cover.
//
// Each exchange is two HTTP round trips by default: one handshake to obtain
// the session id, one for the operation itself. Config.ReuseSession collapses
// the first into a cache lookup.
func Call[T ResponseArgs](c *Client, ctx context.Context, req Request) (*Response[T], error) {
	if c.snapshot().MaxRetries <= 0 {
		return call[T](c, ctx, req)
	}

	var resp *Response[T]
	err := c.retryWithBackoff(ctx, req.Method, func() error {
		var err error
		resp, err = call[T](c, ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func call[T ResponseArgs](c *Client, ctx context.Context, req Request) (*Response[T], error) {
	cfg := c.snapshot()

	sessionID, err := c.sessionID(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s request", req.Method)
	}
	c.log.Debugf("request body: %s", payload)

	opts := append(baseOptions(ctx, cfg),
		request.WithBody(bytes.NewReader(payload)),
		request.WithHeader(SessionHeader, sessionID),
	)

	httpResp, err := request.Do(http.MethodPost, cfg.URL, opts...)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if httpResp.StatusCode == http.StatusConflict {
		c.session.invalidate()
		return nil, &ProtocolError{
			Message:    "session id rejected by server",
			StatusCode: http.StatusConflict,
		}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, classifyHTTPStatusCode(httpResp.StatusCode, string(body))
	}

	var resp Response[T]
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DecodeError{Err: err, Body: body}
	}

	c.log.Debugf("%s result: %s", req.Method, resp.Result)
	return &resp, nil
}
