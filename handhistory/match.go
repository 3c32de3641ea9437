package handhistory

import "regexp"

// matchGroups runs the pattern against s and returns the named capture
// groups, or nil when the pattern does not match.
func matchGroups(re *regexp.Regexp, s string) map[string]string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	groups := make(map[string]string, len(m))
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			groups[name] = m[i]
		}
	}
	return groups
}
