package snapshot

import "errors"

var (
	// ErrCorrupt is returned when a snapshot fails its structural or checksum checks.
	ErrCorrupt = errors.New("snapshot: corrupt snapshot")

	// ErrVersion is returned for snapshots written by an unknown format version.
	ErrVersion = errors.New("snapshot: unsupported version")

	// ErrCodec is returned for unknown codec names or identifiers.
	ErrCodec = errors.New("snapshot: unknown codec")
)
