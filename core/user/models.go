package user

import (
	"time"

	"github.com/gtpim/turmas/core"
)

// Funcoes (roles)
const (
	FuncaoProfessor = "professor"
	FuncaoAluno     = "aluno"
)

var AllFuncoes = []string{FuncaoProfessor, FuncaoAluno}

type Funcao struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var Funcoes = []Funcao{
	{Name: "Professor", Value: FuncaoProfessor},
	{Name: "Aluno", Value: FuncaoAluno},
}

// User is a single identity record carrying a funcao tag. The Turmas key list
// is the funcao-specific payload: registros of turmas created by a professor,
// or of turmas an aluno is enrolled in. The keys resolve against the global
// turma registry; Users never hold Turma objects themselves.
type User struct {
	Nome      string    `json:"nome"`
	Matricula string    `json:"matricula"` // globally unique; doubles as the login credential
	Funcao    string    `json:"funcao"`
	Turmas    []string  `json:"turmas"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

func (u *User) IsProfessor() bool {
	return u.Funcao == FuncaoProfessor
}

func (u *User) IsAluno() bool {
	return u.Funcao == FuncaoAluno
}

// HasTurma reports whether the given registro is in the user's key list.
func (u *User) HasTurma(registro string) bool {
	for _, reg := range u.Turmas {
		if reg == registro {
			return true
		}
	}
	return false
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Nome      string `json:"nome" validate:"required"`
	Matricula string `json:"matricula" validate:"required,alphanum_"`
	Funcao    string `json:"funcao" validate:"required,funcao"`
}

func (nu *NewUser) Validate() error {
	nu.Nome = core.CleanString(nu.Nome)
	nu.Matricula = core.CleanString(nu.Matricula) // exact-match identifier; case is preserved
	nu.Funcao = core.CleanString(nu.Funcao, true /* lower */)

	return core.Validate.Struct(nu)
}
