package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/gtpim/turmas/core"
)

var (
	funcaoTag  = "funcao"
	funcaoText = "funcao must be one of 'professor' or 'aluno'"
)

func init() {
	_ = core.Validate.RegisterValidation(funcaoTag, funcaoValidation)
	core.RegisterCustomTranslation(funcaoTag, funcaoText)
}

// funcaoValidation only allows recognized funcao values.
func funcaoValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, funcao := range AllFuncoes {
		if val == funcao {
			return true
		}
	}
	return false
}
