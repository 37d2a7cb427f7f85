package turma

import (
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/gtpim/turmas/core/user"
)

var (
	// errors
	ErrNotFound          = errors.New("turma not found")
	ErrTurmaExists       = errors.New("a turma with this registro already exists")
	ErrNotOwner          = errors.New("turma not found or user is not its professor")
	ErrNoVagas           = errors.New("turma has no vagas left")
	ErrAlreadyEnrolled   = errors.New("aluno is already enrolled in this turma")
	ErrAtividadeExists   = errors.New("an atividade with this nome already exists in this turma")
	ErrAtividadeNotFound = errors.New("atividade not found")
	ErrNotProfessor      = errors.New("operation restricted to professores")
	ErrNotAluno          = errors.New("operation restricted to alunos")
	ErrAccessDenied      = errors.New("user is neither enrolled in nor the professor of this turma")
)

type (
	// Repository owns the global turma registry. Compound mutations (create +
	// owner key, enroll + aluno key, append with uniqueness check) are atomic:
	// they either fully apply or leave all state untouched.
	Repository interface {
		// CreateTurma inserts the turma keyed by its registro and appends the
		// registro to the owner's key list, in lockstep. Fails with
		// ErrTurmaExists if the registro is already taken.
		CreateTurma(t Turma) (Turma, error)
		GetTurmaByRegistro(registro string) (Turma, error)
		// QueryAllTurmas returns every turma in registry insertion order.
		QueryAllTurmas() ([]Turma, error)
		AppendAula(registro string, aula Aula) error
		// AppendAtividade fails with ErrAtividadeExists if the turma already
		// has an atividade with the same nome (exact, case-sensitive match).
		AppendAtividade(registro string, atividade Atividade) error
		// EnrollAluno adds the aluno to the roster and the registro to the
		// aluno's key list, in lockstep. Fails with ErrNotFound, ErrNoVagas
		// (capacity recomputed on every call) or ErrAlreadyEnrolled.
		EnrollAluno(registro, matricula string) (Turma, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create opens a new turma owned by prof. The registro is derived from
// (curso, materia, prof.Matricula), so a professor can hold at most one turma
// per curso/materia pair.
func (svc *Service) Create(prof user.User, nt NewTurma) (Turma, error) {
	if !prof.IsProfessor() {
		return Turma{}, ErrNotProfessor
	}

	t := Turma{
		Registro:      MakeRegistro(nt.Curso, nt.Materia, prof.Matricula),
		Curso:         nt.Curso,
		Materia:       nt.Materia,
		Vagas:         nt.Vagas,
		Professor:     prof.Matricula,
		ProfessorNome: prof.Nome,
		CreatedAt:     time.Now().UTC(),
	}
	return svc.repo.CreateTurma(t)
}

// getOwned fetches a turma for a professor-scoped mutation. A missing turma
// and a foreign turma collapse into the same ErrNotOwner failure.
func (svc *Service) getOwned(prof user.User, registro string) (Turma, error) {
	if !prof.IsProfessor() {
		return Turma{}, ErrNotProfessor
	}
	t, err := svc.repo.GetTurmaByRegistro(registro)
	if err != nil {
		if err == ErrNotFound {
			return Turma{}, ErrNotOwner
		}
		return Turma{}, pkgerrors.Wrap(err, "getting turma")
	}
	if t.Professor != prof.Matricula {
		return Turma{}, ErrNotOwner
	}
	return t, nil
}

// AddAula appends a lesson to a turma owned by prof. Materia and the
// professor's display name are captured at this instant. Aulas keep creation
// order, not lesson-date order.
func (svc *Service) AddAula(prof user.User, registro string, na NewAula) (Aula, error) {
	t, err := svc.getOwned(prof, registro)
	if err != nil {
		return Aula{}, err
	}

	data, err := ParseData("data", na.Data)
	if err != nil {
		return Aula{}, err
	}

	aula := Aula{
		Materia:   t.Materia,
		Professor: prof.Nome,
		Data:      data,
		Descricao: na.Descricao,
	}
	if err := svc.repo.AppendAula(registro, aula); err != nil {
		return Aula{}, err
	}
	return aula, nil
}

// AddAtividade appends an assignment to a turma owned by prof. Nome must be
// unique within the turma; the same nome may exist in another turma.
func (svc *Service) AddAtividade(prof user.User, registro string, na NewAtividade) (Atividade, error) {
	t, err := svc.getOwned(prof, registro)
	if err != nil {
		return Atividade{}, err
	}

	dataEntrega, err := ParseData("data_entrega", na.DataEntrega)
	if err != nil {
		return Atividade{}, err
	}

	anexo := na.Anexo
	if anexo == "" {
		anexo = "N/A"
	}
	atividade := Atividade{
		Nome:        na.Nome,
		Materia:     t.Materia,
		Professor:   prof.Nome,
		DataEntrega: dataEntrega,
		Anexo:       anexo,
		Descricao:   na.Descricao,
	}
	if err := svc.repo.AppendAtividade(registro, atividade); err != nil {
		return Atividade{}, err
	}
	return atividade, nil
}

// Enroll puts the aluno on the turma's roster, capacity permitting.
func (svc *Service) Enroll(aluno user.User, registro string) (Turma, error) {
	if !aluno.IsAluno() {
		return Turma{}, ErrNotAluno
	}
	return svc.repo.EnrollAluno(registro, aluno.Matricula)
}

// FindAtividade looks an atividade up by exact nome, restricted to turmas the
// aluno is enrolled in. A turma outside the aluno's key list is reported as
// not found, not as denied.
func (svc *Service) FindAtividade(aluno user.User, registro, nome string) (Atividade, error) {
	if !aluno.IsAluno() {
		return Atividade{}, ErrNotAluno
	}
	if !aluno.HasTurma(registro) {
		return Atividade{}, ErrNotFound
	}
	t, err := svc.repo.GetTurmaByRegistro(registro)
	if err != nil {
		return Atividade{}, err
	}
	for _, a := range t.Atividades {
		if a.Nome == nome {
			return a, nil
		}
	}
	return Atividade{}, ErrAtividadeNotFound
}

// QueryAll lists every turma in the system as read-only summaries, in
// registry insertion order. No filtering; visibility is deliberately global.
func (svc *Service) QueryAll() ([]Summary, error) {
	turmas, err := svc.repo.QueryAllTurmas()
	if err != nil {
		return nil, err
	}
	summaries := make([]Summary, 0, len(turmas))
	for i := range turmas {
		summaries = append(summaries, turmas[i].Summary())
	}
	return summaries, nil
}

// Get returns a turma's full detail. Only the owning professor and roster
// members may see it.
func (svc *Service) Get(actor user.User, registro string) (Turma, error) {
	t, err := svc.repo.GetTurmaByRegistro(registro)
	if err != nil {
		return Turma{}, err
	}
	if t.Professor != actor.Matricula && !t.HasAluno(actor.Matricula) {
		return Turma{}, ErrAccessDenied
	}
	return t, nil
}

// resolve maps a user's registro keys back to turmas via the global registry.
func (svc *Service) resolve(registros []string) ([]Turma, error) {
	turmas := make([]Turma, 0, len(registros))
	for _, registro := range registros {
		t, err := svc.repo.GetTurmaByRegistro(registro)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "resolving registro %q", registro)
		}
		turmas = append(turmas, t)
	}
	return turmas, nil
}

// QueryByProfessor lists the turmas created by prof, for the content
// management menu.
func (svc *Service) QueryByProfessor(prof user.User) ([]Turma, error) {
	if !prof.IsProfessor() {
		return nil, ErrNotProfessor
	}
	return svc.resolve(prof.Turmas)
}

// QueryByAluno lists the turmas the aluno is enrolled in, with content totals.
func (svc *Service) QueryByAluno(aluno user.User) ([]EnrolledTurma, error) {
	if !aluno.IsAluno() {
		return nil, ErrNotAluno
	}
	turmas, err := svc.resolve(aluno.Turmas)
	if err != nil {
		return nil, err
	}
	enrolled := make([]EnrolledTurma, 0, len(turmas))
	for i := range turmas {
		t := &turmas[i]
		enrolled = append(enrolled, EnrolledTurma{
			Registro:        t.Registro,
			Materia:         t.Materia,
			Curso:           t.Curso,
			Professor:       t.ProfessorNome,
			TotalAulas:      len(t.Aulas),
			TotalAtividades: len(t.Atividades),
		})
	}
	return enrolled, nil
}

// PendingAtividades aggregates every atividade across the aluno's enrolled
// turmas into a single pending-work view.
func (svc *Service) PendingAtividades(aluno user.User) ([]PendingAtividade, error) {
	if !aluno.IsAluno() {
		return nil, ErrNotAluno
	}
	turmas, err := svc.resolve(aluno.Turmas)
	if err != nil {
		return nil, err
	}
	pending := make([]PendingAtividade, 0)
	for i := range turmas {
		t := &turmas[i]
		for _, a := range t.Atividades {
			pending = append(pending, PendingAtividade{
				TurmaMateria:  t.Materia,
				TurmaRegistro: t.Registro,
				Nome:          a.Nome,
				DataEntrega:   a.DataEntrega.Format(DateLayout),
				Descricao:     a.Descricao,
			})
		}
	}
	return pending, nil
}
