package opportunity

import "errors"

var (
	ErrNoTextGenerator = errors.New("gerador de texto não configurado")
	ErrNoGenerators    = errors.New("nenhum gerador de sinais registrado")
)
