package cookie

const (
	stateLeading = iota
	stateName
	stateValue
	stateQuoted
)

// Parse parses the Cookie header values into Cookies.
// Malformed fragments are dropped, it never fails.
// An unquoted value at the end of a header value is kept,
// an unterminated quoted value is discarded.
func Parse(values ...string) *Cookies {
	cookies := newCookies()
	for _, value := range values {
		parseHeader(value, cookies)
	}
	return cookies
}

// parseHeader scans a single header value from left to right.
// Version 1 attributes such as $Path or $Domain are not handled,
// they are parsed as ordinary cookies.
func parseHeader(header string, cookies *Cookies) {
	state := stateLeading
	start := 0
	var name string

	for i := 0; i < len(header); i++ {
		c := header[i]
		switch state {
		case stateLeading:
			if c == ' ' || c == '\t' {
				start = i + 1
				continue
			}
			state = stateName
			fallthrough
		case stateName:
			if c == '=' {
				name = header[start:i]
				start = i + 1
				state = stateValue
			}
		case stateValue:
			switch c {
			case ';':
				cookies.put(name, header[start:i])
				start = i + 1
				state = stateLeading
			case '"':
				start = i + 1
				state = stateQuoted
			}
		case stateQuoted:
			if c == '"' {
				cookies.put(name, header[start:i])
				start = i + 1
				state = stateLeading
			}
		}
	}

	if state == stateValue {
		cookies.put(name, header[start:])
	}
}
