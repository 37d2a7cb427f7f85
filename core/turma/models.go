package turma

import (
	"errors"
	"fmt"
	"time"

	"github.com/gtpim/turmas/core"
)

// DateLayout is the fixed day/month/year form dates cross the API boundary in.
const DateLayout = "02/01/2006"

var errBadDate = errors.New("invalid date format; use DD/MM/YYYY")

// ParseData parses a date in DateLayout form. Anything else (ISO dates,
// dash-separated dates) is a malformed-input failure reported as a
// core.ValidationError on the named field.
func ParseData(field, value string) (time.Time, error) {
	data, err := time.Parse(DateLayout, core.CleanString(value))
	if err != nil {
		return time.Time{}, core.NewValidationError(errBadDate, core.FieldError{Field: field, Error: errBadDate.Error()})
	}
	return data, nil
}

// MakeRegistro derives a Turma's registry key from curso, materia and the
// professor's matricula. The same three inputs always yield the same key;
// this is the sole uniqueness guard for "one turma per (curso, materia,
// professor)".
func MakeRegistro(curso, materia, professorMatricula string) string {
	return fmt.Sprintf("%s-%s-%s", curso, materia, professorMatricula)
}

// Aula is a lesson record. Materia and Professor are copied from the turma
// and its owner at creation time; immutable once appended.
type Aula struct {
	Materia   string    `json:"materia"`
	Professor string    `json:"professor"`
	Data      time.Time `json:"data"`
	Descricao string    `json:"descricao"`
}

// AulaDetails is the render-ready shape of an Aula.
type AulaDetails struct {
	Materia   string `json:"materia"`
	Professor string `json:"professor"`
	Data      string `json:"data"`
	Descricao string `json:"descricao"`
}

func (a Aula) Details() AulaDetails {
	return AulaDetails{
		Materia:   a.Materia,
		Professor: a.Professor,
		Data:      a.Data.Format(DateLayout + " 15:04"),
		Descricao: a.Descricao,
	}
}

// Atividade is an assignment record. Nome is unique within its turma;
// Anexo is an opaque reference, not a real upload.
type Atividade struct {
	Nome        string    `json:"nome"`
	Materia     string    `json:"materia"`
	Professor   string    `json:"professor"`
	DataEntrega time.Time `json:"data_entrega"`
	Anexo       string    `json:"anexo"`
	Descricao   string    `json:"descricao"`
}

// AtividadeDetails is the render-ready shape of an Atividade.
type AtividadeDetails struct {
	Nome        string `json:"nome"`
	Materia     string `json:"materia"`
	DataEntrega string `json:"data_entrega"`
	Professor   string `json:"professor"`
	Anexo       string `json:"anexo"`
	Descricao   string `json:"descricao"`
}

func (a Atividade) Details() AtividadeDetails {
	return AtividadeDetails{
		Nome:        a.Nome,
		Materia:     a.Materia,
		DataEntrega: a.DataEntrega.Format(DateLayout),
		Professor:   a.Professor,
		Anexo:       a.Anexo,
		Descricao:   a.Descricao,
	}
}

// Turma is a class section owned by one professor, with a capacity-bounded
// aluno roster. Alunos holds matriculas in enrollment order; Aulas and
// Atividades are append-only, in creation order. Professor/ProfessorNome are
// the owner's matricula and display name (users are immutable, so the
// denormalized name cannot go stale).
type Turma struct {
	Registro      string      `json:"registro"`
	Curso         string      `json:"curso"`
	Materia       string      `json:"materia"`
	Vagas         int         `json:"vagas"`
	Professor     string      `json:"professor"`
	ProfessorNome string      `json:"professor_nome"`
	Alunos        []string    `json:"alunos"`
	Aulas         []Aula      `json:"aulas"`
	Atividades    []Atividade `json:"atividades"`
	CreatedAt     time.Time   `json:"created_at"` // UTC
}

// VagasRestantes computes the remaining capacity. Never cached.
func (t *Turma) VagasRestantes() int {
	return t.Vagas - len(t.Alunos)
}

func (t *Turma) HasAluno(matricula string) bool {
	for _, m := range t.Alunos {
		if m == matricula {
			return true
		}
	}
	return false
}

func (t *Turma) HasAtividade(nome string) bool {
	for _, a := range t.Atividades {
		if a.Nome == nome {
			return true
		}
	}
	return false
}

// Summary is the read-only listing shape of a Turma.
type Summary struct {
	Registro       string `json:"registro"`
	Curso          string `json:"curso"`
	Materia        string `json:"materia"`
	Professor      string `json:"professor"`
	VagasRestantes int    `json:"vagas_restantes"`
}

func (t *Turma) Summary() Summary {
	return Summary{
		Registro:       t.Registro,
		Curso:          t.Curso,
		Materia:        t.Materia,
		Professor:      t.ProfessorNome,
		VagasRestantes: t.VagasRestantes(),
	}
}

// EnrolledTurma is the "minhas turmas" shape for an aluno's panel.
type EnrolledTurma struct {
	Registro        string `json:"registro"`
	Materia         string `json:"materia"`
	Curso           string `json:"curso"`
	Professor       string `json:"professor"`
	TotalAulas      int    `json:"total_aulas"`
	TotalAtividades int    `json:"total_atividades"`
}

// PendingAtividade is one row of an aluno's aggregated pending-work view.
type PendingAtividade struct {
	TurmaMateria  string `json:"turma_materia"`
	TurmaRegistro string `json:"turma_registro"`
	Nome          string `json:"nome"`
	DataEntrega   string `json:"data_entrega"`
	Descricao     string `json:"descricao"`
}

// NewTurma contains information needed to create a new Turma.
// Vagas is expected to be >= 0 but is not enforced here; a nonsensical
// capacity only ever rejects enrollments.
type NewTurma struct {
	Curso   string `json:"curso" validate:"required"`
	Materia string `json:"materia" validate:"required"`
	Vagas   int    `json:"vagas"`
}

func (nt *NewTurma) Validate() error {
	nt.Curso = core.CleanString(nt.Curso)
	nt.Materia = core.CleanString(nt.Materia)

	return core.Validate.Struct(nt)
}

// NewAula contains information needed to append an Aula to a Turma.
type NewAula struct {
	Data      string `json:"data" validate:"required"`
	Descricao string `json:"descricao" validate:"required"`
}

func (na *NewAula) Validate() error {
	na.Data = core.CleanString(na.Data)
	na.Descricao = core.CleanString(na.Descricao)

	return core.Validate.Struct(na)
}

// NewAtividade contains information needed to append an Atividade to a Turma.
type NewAtividade struct {
	Nome        string `json:"nome" validate:"required"`
	DataEntrega string `json:"data_entrega" validate:"required"`
	Anexo       string `json:"anexo"`
	Descricao   string `json:"descricao"`
}

func (na *NewAtividade) Validate() error {
	na.Nome = core.CleanString(na.Nome)
	na.DataEntrega = core.CleanString(na.DataEntrega)
	na.Anexo = core.CleanString(na.Anexo)
	na.Descricao = core.CleanString(na.Descricao)

	return core.Validate.Struct(na)
}
