package mahjong

// ErrorKind tags the structured error kinds the engine can surface. The
// surrounding CLI/HTTP glue translates a Kind into an exit status or HTTP
// status code; the core itself never does that translation (see
// cmd/mjcli and cmd/mjserve, grounded on the teacher's
// transfer.MapError switch-over-sentinels pattern).
type ErrorKind int

const (
	// ErrMalformedTile: unknown token in input.
	ErrMalformedTile ErrorKind = iota
	// ErrHandLengthMismatch: hand_tiles size != 13 + total kongs (points
	// mode), or wait enumeration called with total != 13-3*fixedMelds.
	ErrHandLengthMismatch
	// ErrTileOverCount: more than four copies of any tile across inputs.
	ErrTileOverCount
	// ErrInvalidMeld: declared open meld is neither a valid triplet nor a
	// valid consecutive single-suit sequence, or declared kong is not
	// four identical tiles.
	ErrInvalidMeld
	// ErrMeldAccountingMismatch: fixed meld tiles are not present in the
	// hand vector.
	ErrMeldAccountingMismatch
	// ErrNoWinningDecomposition: the 14-count is not an agari under any
	// archetype.
	ErrNoWinningDecomposition
	// ErrRiichiRequiresClosed: riichi declared on a hand containing open furo.
	ErrRiichiRequiresClosed
	// ErrNoYaku: agari is structurally valid but produces no yaku and no yakuman.
	ErrNoYaku
)

var kindNames = map[ErrorKind]string{
	ErrMalformedTile:          "malformed-tile",
	ErrHandLengthMismatch:     "hand-length-mismatch",
	ErrTileOverCount:          "tile-over-count",
	ErrInvalidMeld:            "invalid-meld",
	ErrMeldAccountingMismatch: "meld-accounting-mismatch",
	ErrNoWinningDecomposition: "no-winning-decomposition",
	ErrRiichiRequiresClosed:   "riichi-requires-closed",
	ErrNoYaku:                 "no-yaku",
}

// String returns the kind's kebab-case tag, e.g. "no-yaku".
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown-error"
}

// Error is the engine's single error type: a kind tag plus a human
// message. All errors are propagated to the caller this way; there is no
// silent recovery and no retry inside the core.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Message }

// Is lets errors.Is match any *Error sharing the same Kind, so callers can
// write errors.Is(err, &mahjong.Error{Kind: mahjong.ErrNoYaku}) without
// needing package-level sentinels for every kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

func newErr(kind ErrorKind, msg string) *Error { return &Error{Kind: kind, Message: msg} }
