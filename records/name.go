package records

import "strings"

// ParseSequenceName returns the accession of a FASTA header and the version number after
// the dot of a gi header. Headers that are not in a known database format are named by
// their first word.
func ParseSequenceName(header string) (name string, version int) {
	var afterDot string
	prefix, rest, found := strings.Cut(header, "|")
	if !found {
		prefix = ""
	}
	switch prefix {
	case "gi":
		last := strings.LastIndexByte(header, '|')
		before := strings.LastIndexByte(header[:last], '|')
		name = header[before+1 : last]
		if dot := strings.IndexByte(name, '.'); dot != -1 {
			name, afterDot = name[:dot], name[dot+1:]
		}
	case "DisProt", "sp", "tr", "gb":
		name, _, _ = strings.Cut(rest, "|")
	case "pir", "prf":
		name = firstWord(strings.TrimPrefix(rest, "|"))
	default:
		name = firstWord(header)
	}

	if afterDot == "" {
		return name, 0
	}
	version = leadingInt(afterDot)
	if version == 0 {
		name += "." + afterDot
	}
	return name, version
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}

// leadingInt parses the digits at the start of s, ignoring anything after them.
func leadingInt(s string) int {
	var answer int
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		answer = answer*10 + int(s[i]-'0')
	}
	return answer
}
