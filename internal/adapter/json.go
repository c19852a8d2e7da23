package adapter

import "strings"

// ExtractJSON remove cercas de código markdown e devolve o trecho JSON da resposta.
// Aceita tanto arrays quanto objetos; o que aparecer primeiro define o início.
func ExtractJSON(s string) string {
	if idx := strings.Index(s, "```json"); idx != -1 {
		s = s[idx+len("```json"):]
		if end := strings.Index(s, "```"); end != -1 {
			s = s[:end]
		}
	} else if idx := strings.Index(s, "```"); idx != -1 {
		s = s[idx+3:]
		if end := strings.Index(s, "```"); end != -1 {
			s = s[:end]
		}
	}

	start := strings.IndexAny(s, "[{")
	if start == -1 {
		return strings.TrimSpace(s)
	}
	s = s[start:]

	closer := byte('}')
	if s[0] == '[' {
		closer = ']'
	}
	if end := strings.LastIndexByte(s, closer); end != -1 {
		s = s[:end+1]
	}

	return strings.TrimSpace(s)
}
