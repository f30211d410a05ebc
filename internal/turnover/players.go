package turnover

import (
	"strings"
)

// fieldPositionSep precedes the field position that trails a recoverer's name,
// as in "recovered by J. Smith at NYJ-35".
const fieldPositionSep = " at "

// recovererAnchor returns the phrase that precedes the recovering player
func recovererAnchor(kind Kind) (string, bool) {
	switch kind {
	case Fumble:
		return "recovered by", true
	case Interception:
		return "intercepted by", true
	default:
		return "", false
	}
}

// committerAnchor returns the phrase that follows the committing player. For
// interceptions the source records the incompletion before naming the
// interceptor, so the passer is whoever precedes "pass incomplete".
func committerAnchor(kind Kind) (string, bool) {
	switch kind {
	case Fumble:
		return "fumbles", true
	case Interception:
		return "pass incomplete", true
	default:
		return "", false
	}
}

// ExtractRecoverer returns the player who gained possession. The second return
// is false for Unknown kinds and for fragments missing the anchor phrase.
func ExtractRecoverer(fragment string, kind Kind) (string, bool) {
	anchor, ok := recovererAnchor(kind)
	if !ok {
		return "", false
	}

	idx := indexFold(fragment, anchor)
	if idx < 0 {
		return "", false
	}

	after := strings.TrimSpace(fragment[idx+len(anchor):])
	name, _, _ := strings.Cut(after, fieldPositionSep)
	return strings.TrimSpace(name), true
}

// ExtractCommitter returns the player who lost possession. An empty name with
// true means the anchor opened the fragment.
func ExtractCommitter(fragment string, kind Kind) (string, bool) {
	anchor, ok := committerAnchor(kind)
	if !ok {
		return "", false
	}

	idx := indexFold(fragment, anchor)
	if idx < 0 {
		return "", false
	}

	return strings.TrimSpace(fragment[:idx]), true
}

// indexFold is strings.Index ignoring ASCII case. Anchors are ASCII, so a
// match always spans exactly len(substr) bytes of s.
func indexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}
