package logging

import "log/slog"

// Chord groups the keys of a chord. second is empty while only the
// first key is known.
func Chord(first rune, second string) slog.Attr {
	if second == "" {
		return slog.Group("chord", slog.String("first", string(first)))
	}
	return slog.Group("chord",
		slog.String("first", string(first)),
		slog.String("second", second))
}

// Transition records a chord state change caused by event seq
func Transition(from, to string, seq uint64) slog.Attr {
	return slog.Group("transition",
		slog.String("from", from),
		slog.String("to", to),
		slog.Uint64("seq", seq))
}

// Session tags records that belong to one SSH session
func Session(id, operator string) slog.Attr {
	return slog.Group("session",
		slog.String("id", id),
		slog.String("operator", operator))
}
