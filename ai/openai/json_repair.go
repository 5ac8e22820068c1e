// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package openai

import "strings"

// repairJSON fixes the key-quoting mistakes small local models make in
// JSON mode. A key is expected right after '{' or ',': if the model emitted
// `type":` or a fully bare `type:`, the missing quotes are inserted. Text
// inside string values is left untouched.
func repairJSON(s string) string {
	var out strings.Builder
	out.Grow(len(s) + 16)

	runes := []rune(s)
	inString := false
	for i := 0; i < len(runes); {
		ch := runes[i]

		if inString {
			out.WriteRune(ch)
			if ch == '\\' && i+1 < len(runes) {
				out.WriteRune(runes[i+1])
				i += 2
				continue
			}
			if ch == '"' {
				inString = false
			}
			i++
			continue
		}

		switch ch {
		case '"':
			inString = true
			out.WriteRune(ch)
			i++
		case '{', ',':
			out.WriteRune(ch)
			i++
			for i < len(runes) && isSpace(runes[i]) {
				out.WriteRune(runes[i])
				i++
			}
			if i < len(runes) && isLetter(runes[i]) {
				start := i
				for i < len(runes) && (isLetter(runes[i]) || runes[i] == '_') {
					i++
				}
				rest := runes[i:]
				switch {
				case len(rest) >= 2 && rest[0] == '"' && rest[1] == ':':
					// missing opening quote: key": -> "key":
					out.WriteRune('"')
					out.WriteString(string(runes[start:i]))
				case len(rest) >= 1 && rest[0] == ':':
					// bare key: key: -> "key":
					out.WriteRune('"')
					out.WriteString(string(runes[start:i]))
					out.WriteRune('"')
				default:
					out.WriteString(string(runes[start:i]))
				}
			}
		default:
			out.WriteRune(ch)
			i++
		}
	}

	return out.String()
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
