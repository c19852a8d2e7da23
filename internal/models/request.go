package models

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// OpportunitiesRequest é o corpo de POST /api/v1/opportunities
// @Description Perfil do negócio e inventário atual de keywords.
type OpportunitiesRequest struct {
	// Linhas de desempenho do Search Console (pode ser vazio)
	PerformanceRows []PerformanceRow `json:"performanceRows" validate:"dive"`
	// Perfil do negócio (obrigatório)
	BusinessProfile *BusinessProfile `json:"businessProfile" validate:"required"`
	// Chave de cache explícita. Se vazia, é derivada de usuário, tipo de negócio e site.
	CacheKey string `json:"cacheKey,omitempty"`
	// ID do usuário. Se vazio, usa o header X-User-ID.
	UserID string `json:"userId,omitempty"`
	// Ignora o cache e regenera o resultado
	ForceRefresh bool `json:"forceRefresh,omitempty"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Usa os nomes JSON nas mensagens de erro
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Validate valida o formato da requisição.
// Só rejeita quando faltam campos do perfil, ou quando não há linhas e o perfil não permite gerar oportunidades.
func (r *OpportunitiesRequest) Validate() error {
	if r.BusinessProfile == nil {
		return &ValidationError{
			Fields: map[string]string{"businessProfile": "is required"},
			Err:    ErrProfileRequired,
		}
	}

	if err := requestValidator().Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return &ValidationError{Err: err}
		}
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fieldPath(fe.Namespace())] = friendlyMessage(fe)
		}
		return &ValidationError{Fields: fields, Err: err}
	}

	if len(r.PerformanceRows) == 0 && r.BusinessProfile.IsDegenerate() {
		return &ValidationError{Err: ErrNoUsableInput}
	}

	return nil
}

// fieldPath remove o nome do struct raiz: "OpportunitiesRequest.businessProfile.location" -> "businessProfile.location"
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func friendlyMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
