package route

// Accepts reports whether file satisfies every segment of name: each
// namespace segment through an app_name declaration or a directory hint, and
// the leaf through a named-route declaration.
func Accepts(name QualifiedName, file CandidateFile) bool {
	if !name.Valid() {
		return false
	}
	dir := file.Dir()
	for _, namespace := range name.Namespaces() {
		if !HasAppNamespace(file.Content, namespace) && !DirectoryHint(dir, namespace) {
			return false
		}
	}
	return HasNamedRoute(file.Content, name.Leaf())
}

// Resolve returns the first candidate, in the given order, that Accepts name
// and has a locatable declaration line. A file that is accepted but whose
// line cannot be located is skipped.
func Resolve(name QualifiedName, candidates []CandidateFile) MatchResult {
	if !name.Valid() {
		return NotFound
	}
	for _, candidate := range candidates {
		if !Accepts(name, candidate) {
			continue
		}
		lines := candidate.Lines()
		index, ok := LocateLine(name, lines)
		if !ok {
			continue
		}
		return MatchResult{
			Found:     true,
			File:      candidate,
			LineIndex: index,
			LineText:  lines[index],
		}
	}
	return NotFound
}
