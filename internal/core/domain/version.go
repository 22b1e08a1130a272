package domain

import "strings"

// CompareVersions orders two Debian package versions.
//
// The result is negative when a sorts before b, zero when they are equal and
// positive otherwise. Versions are split into epoch, upstream version and
// revision; a missing epoch is 0 and a missing revision is "0". Any string is
// accepted, malformed input is compared best-effort.
func CompareVersions(a, b string) int {
	aEpoch, aRest := splitEpoch(a)
	bEpoch, bRest := splitEpoch(b)

	if res := compareFragment(aEpoch, bEpoch); res != 0 {
		return res
	}

	aUpstream, aRevision := splitRevision(aRest)
	bUpstream, bRevision := splitRevision(bRest)

	if res := compareFragment(aUpstream, bUpstream); res != 0 {
		return res
	}

	return compareFragment(aRevision, bRevision)
}

// splitEpoch separates the epoch from the rest of the version.
// A zero epoch compares equal to no epoch at all.
func splitEpoch(v string) (epoch, rest string) {
	idx := strings.IndexByte(v, ':')
	if idx < 0 {
		return "", v
	}
	epoch = strings.TrimLeft(v[:idx], "0")
	return epoch, v[idx+1:]
}

// splitRevision splits at the last hyphen. Versions without a revision are treated as revision "0".
func splitRevision(v string) (upstream, revision string) {
	idx := strings.LastIndexByte(v, '-')
	if idx < 0 {
		return v, "0"
	}
	return v[:idx], v[idx+1:]
}

// order returns the sort weight of a non-digit character.
func order(c byte) int {
	switch {
	case isDigit(c):
		return 0
	case isAlpha(c):
		return int(c)
	case c == '~':
		return -1
	default:
		return int(c) + 256
	}
}

// compareFragment compares alternating runs of non-digits and digits.
func compareFragment(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		for i < len(a) && j < len(b) && (!isDigit(a[i]) || !isDigit(b[j])) {
			ac, bc := order(a[i]), order(b[j])
			if ac != bc {
				return ac - bc
			}
			i++
			j++
		}

		for i < len(a) && a[i] == '0' {
			i++
		}
		for j < len(b) && b[j] == '0' {
			j++
		}

		firstDiff := 0
		for i < len(a) && j < len(b) && isDigit(a[i]) && isDigit(b[j]) {
			if firstDiff == 0 {
				firstDiff = int(a[i]) - int(b[j])
			}
			i++
			j++
		}

		if i < len(a) && isDigit(a[i]) {
			return 1
		}
		if j < len(b) && isDigit(b[j]) {
			return -1
		}
		if firstDiff != 0 {
			return firstDiff
		}
	}

	switch {
	case i == len(a) && j == len(b):
		return 0
	case i == len(a):
		// a is shorter: it wins only against a trailing tilde
		if b[j] == '~' {
			return 1
		}
		return -1
	default:
		if a[i] == '~' {
			return -1
		}
		return 1
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
