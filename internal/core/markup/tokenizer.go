package markup

// scanState is the style the scanner is currently inside.
type scanState int

const (
	stateNormal scanState = iota
	stateBold
	stateItalic
	stateMono
	stateHeader
)

// Tokenize scans line and returns its spans in order. Concatenating the span
// text always reproduces line exactly.
//
// Rules, tried in order at each position in the normal state:
//
//	**   bold until the next ** or end of line
//	*    italic until the next * or end of line
//	'    mono until the next ' or end of line
//	##   header 2 for the rest of the line (at column 0 or after a space)
//	#    header 1 for the rest of the line (same position rule)
//
// Any other character is a one-character Normal span.
func Tokenize(line string) []Span {
	var (
		spans []Span
		state = stateNormal
		style Style
		start int
	)

	emit := func(end int) {
		spans = append(spans, Span{Text: line[start:end], Style: style})
		state = stateNormal
	}

	i := 0
	for i < len(line) {
		switch state {
		case stateNormal:
			start = i
			switch {
			case hasPair(line, i, '*'):
				state, style = stateBold, Bold
				i += 2
			case line[i] == '*':
				state, style = stateItalic, Italic
				i++
			case line[i] == '\'':
				state, style = stateMono, Mono
				i++
			case hasPair(line, i, '#') && headerPos(line, i):
				state, style = stateHeader, Header2
				i++
			case line[i] == '#' && headerPos(line, i):
				state, style = stateHeader, Header1
				i++
			default:
				spans = append(spans, Span{Text: line[i : i+1], Style: Normal})
				i++
			}
		case stateBold:
			if hasPair(line, i, '*') {
				i += 2
				emit(i)
				continue
			}
			i++
		case stateItalic:
			i++
			if line[i-1] == '*' {
				emit(i)
			}
		case stateMono:
			i++
			if line[i-1] == '\'' {
				emit(i)
			}
		case stateHeader:
			i = len(line)
		}
	}

	if state != stateNormal {
		emit(len(line))
	}
	return spans
}

func hasPair(line string, i int, c byte) bool {
	return i+1 < len(line) && line[i] == c && line[i+1] == c
}

// headerPos reports whether a header marker may start at i.
func headerPos(line string, i int) bool {
	return i == 0 || line[i-1] == ' '
}
