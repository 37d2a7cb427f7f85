package echoapi

import (
	"github.com/gtpim/turmas/core"
	"github.com/gtpim/turmas/core/turma"
)

type LoginRequest struct {
	Matricula string `json:"matricula" validate:"required"`
}

func (lr *LoginRequest) Validate() error {
	lr.Matricula = core.CleanString(lr.Matricula)
	return core.Validate.Struct(lr)
}

type LoginResponse struct {
	Token string `json:"token"`
}

// DashboardResponse is the landing view: who is logged in plus every turma
// in the system.
type DashboardResponse struct {
	Usuario       string          `json:"usuario"`
	Funcao        string          `json:"funcao"`
	TotalUsuarios int             `json:"total_usuarios"`
	Turmas        []turma.Summary `json:"turmas"`
}

// TurmaDetailResponse is the render-ready detail view of a turma.
type TurmaDetailResponse struct {
	Registro       string                   `json:"registro"`
	Curso          string                   `json:"curso"`
	Materia        string                   `json:"materia"`
	Vagas          int                      `json:"vagas"`
	VagasRestantes int                      `json:"vagas_restantes"`
	Professor      string                   `json:"professor"`
	Alunos         []string                 `json:"alunos"`
	Aulas          []turma.AulaDetails      `json:"aulas"`
	Atividades     []turma.AtividadeDetails `json:"atividades"`
	IsProfessor    bool                     `json:"is_professor"`
}

func newTurmaDetailResponse(t turma.Turma, isProfessor bool) TurmaDetailResponse {
	aulas := make([]turma.AulaDetails, 0, len(t.Aulas))
	for _, a := range t.Aulas {
		aulas = append(aulas, a.Details())
	}
	atividades := make([]turma.AtividadeDetails, 0, len(t.Atividades))
	for _, a := range t.Atividades {
		atividades = append(atividades, a.Details())
	}
	return TurmaDetailResponse{
		Registro:       t.Registro,
		Curso:          t.Curso,
		Materia:        t.Materia,
		Vagas:          t.Vagas,
		VagasRestantes: t.VagasRestantes(),
		Professor:      t.ProfessorNome,
		Alunos:         t.Alunos,
		Aulas:          aulas,
		Atividades:     atividades,
		IsProfessor:    isProfessor,
	}
}
