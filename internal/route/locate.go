package route

import "strings"

// LocateLine returns the 0-based index of the line declaring name.
//
// Segments are walked outer to inner. Each walk scans from the top; a line
// containing the segment (or declaring it) arms the scan, and the arming is
// never reset, so later segments start armed once any segment was seen.
// While armed, the first line declaring the segment as a named route is that
// segment's answer. The leaf's answer is returned.
func LocateLine(name QualifiedName, lines []string) (int, bool) {
	if !name.Valid() {
		return 0, false
	}

	entered := false
	found := -1
	for _, segment := range name {
		found = -1
		for index, line := range lines {
			declares := HasNamedRoute(line, segment)
			if !entered && (declares || strings.Contains(line, segment)) {
				entered = true
			}
			if entered && declares {
				found = index
				break
			}
		}
	}
	if found < 0 {
		return 0, false
	}
	return found, true
}
