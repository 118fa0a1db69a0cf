package transmission

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// TorrentGetField enumerates the torrent attributes that can be requested
// with a torrent-get call. Each member maps to exactly one protocol field
// name; the mapping is closed, unknown names are rejected.
type TorrentGetField int

const (
	FieldID TorrentGetField = iota
	FieldAddedDate
	FieldDownloadDir
	FieldError
	FieldErrorString
	FieldEta
	FieldHashString
	FieldIsFinished
	FieldIsStalled
	FieldLeftUntilDone
	FieldMetadataPercentComplete
	FieldName
	FieldPeersConnected
	FieldPeersGettingFromUs
	FieldPeersSendingToUs
	FieldPercentDone
	FieldQueuePosition
	FieldRateDownload
	FieldRateUpload
	FieldRecheckProgress
	FieldSeedRatioLimit
	FieldSizeWhenDone
	FieldStatus
	FieldTorrentFile
	FieldTotalSize
	FieldUploadedEver
	FieldUploadRatio
)

var torrentGetFieldNames = [...]string{
	FieldID:                      "id",
	FieldAddedDate:               "addedDate",
	FieldDownloadDir:             "downloadDir",
	FieldError:                   "error",
	FieldErrorString:             "errorString",
	FieldEta:                     "eta",
	FieldHashString:              "hashString",
	FieldIsFinished:              "isFinished",
	FieldIsStalled:               "isStalled",
	FieldLeftUntilDone:           "leftUntilDone",
	FieldMetadataPercentComplete: "metadataPercentComplete",
	FieldName:                    "name",
	FieldPeersConnected:          "peersConnected",
	FieldPeersGettingFromUs:      "peersGettingFromUs",
	FieldPeersSendingToUs:        "peersSendingToUs",
	FieldPercentDone:             "percentDone",
	FieldQueuePosition:           "queuePosition",
	FieldRateDownload:            "rateDownload",
	FieldRateUpload:              "rateUpload",
	FieldRecheckProgress:         "recheckProgress",
	FieldSeedRatioLimit:          "seedRatioLimit",
	FieldSizeWhenDone:            "sizeWhenDone",
	FieldStatus:                  "status",
	FieldTorrentFile:             "torrentFile",
	FieldTotalSize:               "totalSize",
	FieldUploadedEver:            "uploadedEver",
	FieldUploadRatio:             "uploadRatio",
}

var torrentGetFieldsByName = func() map[string]TorrentGetField {
	m := make(map[string]TorrentGetField, len(torrentGetFieldNames))
	for f, name := range torrentGetFieldNames {
		m[name] = TorrentGetField(f)
	}
	return m
}()

// String returns the protocol field name.
func (f TorrentGetField) String() string {
	if int(f) < 0 || int(f) >= len(torrentGetFieldNames) {
		return "unknown"
	}
	return torrentGetFieldNames[f]
}

func (f TorrentGetField) MarshalJSON() ([]byte, error) {
	if int(f) < 0 || int(f) >= len(torrentGetFieldNames) {
		return nil, errors.Errorf("invalid torrent-get field: %d", int(f))
	}
	return json.Marshal(torrentGetFieldNames[f])
}

func (f *TorrentGetField) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "failed to decode torrent-get field")
	}
	field, err := ParseTorrentGetField(name)
	if err != nil {
		return err
	}
	*f = field
	return nil
}

// ParseTorrentGetField maps a protocol field name back to its enum member.
func ParseTorrentGetField(name string) (TorrentGetField, error) {
	field, ok := torrentGetFieldsByName[name]
	if !ok {
		return 0, errors.Errorf("unknown torrent-get field: %q", name)
	}
	return field, nil
}

// TorrentAction enumerates the action verbs that can be applied to a set of
// torrents. Each member maps to exactly one RPC method name.
type TorrentAction int

const (
	ActionStart TorrentAction = iota
	ActionStartNow
	ActionStop
	ActionVerify
	ActionReannounce
	ActionRemove
)

var torrentActionNames = [...]string{
	ActionStart:      "torrent-start",
	ActionStartNow:   "torrent-start-now",
	ActionStop:       "torrent-stop",
	ActionVerify:     "torrent-verify",
	ActionReannounce: "torrent-reannounce",
	ActionRemove:     "torrent-remove",
}

var torrentActionsByName = func() map[string]TorrentAction {
	m := make(map[string]TorrentAction, len(torrentActionNames))
	for a, name := range torrentActionNames {
		m[name] = TorrentAction(a)
	}
	return m
}()

// String returns the RPC method name for the action.
func (a TorrentAction) String() string {
	if int(a) < 0 || int(a) >= len(torrentActionNames) {
		return "unknown"
	}
	return torrentActionNames[a]
}

func (a TorrentAction) MarshalJSON() ([]byte, error) {
	if int(a) < 0 || int(a) >= len(torrentActionNames) {
		return nil, errors.Errorf("invalid torrent action: %d", int(a))
	}
	return json.Marshal(torrentActionNames[a])
}

func (a *TorrentAction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errors.Wrap(err, "failed to decode torrent action")
	}
	action, err := ParseTorrentAction(name)
	if err != nil {
		return err
	}
	*a = action
	return nil
}

// ParseTorrentAction maps an RPC method name back to its enum member.
func ParseTorrentAction(name string) (TorrentAction, error) {
	action, ok := torrentActionsByName[name]
	if !ok {
		return 0, errors.Errorf("unknown torrent action: %q", name)
	}
	return action, nil
}
