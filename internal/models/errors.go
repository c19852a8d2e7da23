package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidRequest  = errors.New("requisição inválida")
	ErrProfileRequired = errors.New("businessProfile é obrigatório")
	ErrNoUsableInput   = errors.New("sem performanceRows e perfil insuficiente para gerar oportunidades")
)

// ValidationError carrega as mensagens por campo de uma requisição inválida
type ValidationError struct {
	Fields map[string]string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%v: %v", ErrInvalidRequest, e.Err)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return fmt.Sprintf("%v: %s", ErrInvalidRequest, strings.Join(parts, "; "))
}

// Is permite errors.Is(err, ErrInvalidRequest)
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

func (e *ValidationError) Unwrap() error { return e.Err }
