package transmission

import "github.com/pkg/errors"

// ResultSuccess is the result string the daemon returns when a call succeeds.
// Any other value is an application-level failure and the response arguments
// must not be trusted.
const ResultSuccess = "success"

// Request is the {"method": ..., "arguments": {...}} wire envelope sent for
// every call. Requests are built by the New*Request constructors and never
// mutated afterwards.
type Request struct {
	Method    string `json:"method"`
	Arguments any    `json:"arguments"`
}

type sessionGetArgs struct{}

type torrentGetArgs struct {
	Fields []TorrentGetField `json:"fields"`
}

type torrentActionArgs struct {
	IDs []int64 `json:"ids"`
}

// NewSessionGetRequest builds a session-get request. It carries no arguments.
func NewSessionGetRequest() Request {
	return Request{
		Method:    "session-get",
		Arguments: sessionGetArgs{},
	}
}

// NewTorrentGetRequest builds a torrent-get request for the given fields.
func NewTorrentGetRequest(fields []TorrentGetField) Request {
	return Request{
		Method:    "torrent-get",
		Arguments: torrentGetArgs{Fields: fields},
	}
}

// NewTorrentActionRequest builds an action request (torrent-start,
// torrent-stop, ...) targeting the given torrent ids. The action verb itself
// is the RPC method name.
func NewTorrentActionRequest(action TorrentAction, ids []int64) Request {
	return Request{
		Method:    action.String(),
		Arguments: torrentActionArgs{IDs: ids},
	}
}

// ResponseArgs marks the types that are legal response payloads. The wire
// format carries no type tag; which shape the daemon returns is determined by
// the method that was sent, so the pairing is fixed at compile time through
// this closed set.
type ResponseArgs interface {
	responseArgs()
}

// Response is the {"result": ..., "arguments": {...}} wire envelope, typed by
// the payload shape expected for the method that was called.
type Response[T ResponseArgs] struct {
	Result    string `json:"result"`
	Arguments T      `json:"arguments"`
}

// IsOK reports whether the daemon accepted the call.
func (r *Response[T]) IsOK() bool {
	return r.Result == ResultSuccess
}

// Err returns the application-level failure carried in the result field, or
// nil on success. Transport, protocol and decode failures never reach here;
// they abort the call before a Response exists.
func (r *Response[T]) Err() error {
	if r.IsOK() {
		return nil
	}
	return errors.Errorf("rpc call failed: %s", r.Result)
}

// SessionInfo is the session-get response payload: the daemon's session
// settings, keyed by Transmission's kebab-case setting names.
type SessionInfo struct {
	BlocklistEnabled      bool   `json:"blocklist-enabled"`
	BlocklistSize         int64  `json:"blocklist-size"`
	DownloadDir           string `json:"download-dir"`
	Encryption            string `json:"encryption"`
	PeerPort              int64  `json:"peer-port"`
	PeerPortRandomEnabled bool   `json:"peer-port-random-on-start"`
	RPCVersion            int64  `json:"rpc-version"`
	RPCVersionMinimum     int64  `json:"rpc-version-minimum"`
	SpeedLimitDown        int64  `json:"speed-limit-down"`
	SpeedLimitDownEnabled bool   `json:"speed-limit-down-enabled"`
	SpeedLimitUp          int64  `json:"speed-limit-up"`
	SpeedLimitUpEnabled   bool   `json:"speed-limit-up-enabled"`
	Version               string `json:"version"`
}

func (SessionInfo) responseArgs() {}

// Torrent is one torrent record inside a torrent-get response. Only the
// requested fields are populated; the rest keep their zero values.
type Torrent struct {
	ID                      int64   `json:"id"`
	AddedDate               int64   `json:"addedDate"`
	DownloadDir             string  `json:"downloadDir"`
	Error                   int64   `json:"error"`
	ErrorString             string  `json:"errorString"`
	Eta                     int64   `json:"eta"`
	HashString              string  `json:"hashString"`
	IsFinished              bool    `json:"isFinished"`
	IsStalled               bool    `json:"isStalled"`
	LeftUntilDone           int64   `json:"leftUntilDone"`
	MetadataPercentComplete float64 `json:"metadataPercentComplete"`
	Name                    string  `json:"name"`
	PeersConnected          int64   `json:"peersConnected"`
	PeersGettingFromUs      int64   `json:"peersGettingFromUs"`
	PeersSendingToUs        int64   `json:"peersSendingToUs"`
	PercentDone             float64 `json:"percentDone"`
	QueuePosition           int64   `json:"queuePosition"`
	RateDownload            int64   `json:"rateDownload"`
	RateUpload              int64   `json:"rateUpload"`
	RecheckProgress         float64 `json:"recheckProgress"`
	SeedRatioLimit          float64 `json:"seedRatioLimit"`
	SizeWhenDone            int64   `json:"sizeWhenDone"`
	Status                  int64   `json:"status"`
	TorrentFile             string  `json:"torrentFile"`
	TotalSize               int64   `json:"totalSize"`
	UploadedEver            int64   `json:"uploadedEver"`
	UploadRatio             float64 `json:"uploadRatio"`
}

// Torrents is the torrent-get response payload: an ordered list of records.
type Torrents struct {
	Torrents []Torrent `json:"torrents"`
}

func (Torrents) responseArgs() {}

// Nothing is the payload of methods whose success response carries no
// meaningful arguments (all torrent actions).
type Nothing struct{}

func (Nothing) responseArgs() {}
