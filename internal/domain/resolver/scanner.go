package resolver

// Scope is the body of a Directive, split at its same-depth #else.
type Scope struct {
	Primary      []string
	Alternate    []string
	HasAlternate bool
	// Chained is set when an #elif sits at the scope's own depth. Such a
	// scope cannot be reduced to a single branch.
	Chained bool
}

// branch returns the lines that survive for verdict v.
func (s Scope) branch(v Verdict) []string {
	if v == True {
		return s.Primary
	}

	return s.Alternate
}

// scan collects the Scope opened at lines[start] and returns it with the
// number of lines consumed, opener and closer included. Branch contents are
// copied verbatim; nested directives are not evaluated.
func scan(lines []string, start int) (Scope, int, error) {
	var scope Scope

	depth := 1

	for i := start + 1; i < len(lines); i++ {
		line := lines[i]

		switch shapeOf(line) {
		case shapeOpen:
			depth++
		case shapeEndif:
			depth--
			if depth == 0 {
				return scope, i - start + 1, nil
			}
		case shapeElse:
			if depth == 1 {
				if scope.HasAlternate {
					return Scope{}, 0, &LineError{Line: i + 1, Err: ErrMalformedSeparator}
				}

				scope.HasAlternate = true

				continue
			}
		case shapeElif:
			if depth == 1 {
				if scope.HasAlternate {
					return Scope{}, 0, &LineError{Line: i + 1, Err: ErrMalformedSeparator}
				}

				scope.Chained = true
			}
		case shapeText:
		}

		if scope.HasAlternate {
			scope.Alternate = append(scope.Alternate, line)
		} else {
			scope.Primary = append(scope.Primary, line)
		}
	}

	return Scope{}, 0, &LineError{Line: start + 1, Err: ErrUnterminatedScope}
}
