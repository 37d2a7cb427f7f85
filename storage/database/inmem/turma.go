package inmemdb

import (
	"github.com/pkg/errors"

	"github.com/gtpim/turmas/core/turma"
)

type turmaRepository struct {
	db *DB
}

func NewTurmaRepository(db *DB) turma.Repository {
	return &turmaRepository{db: db}
}

// CreateTurma inserts the turma and appends its registro to the owner's key
// list under one lock, so the registry and the owner-side index cannot
// diverge.
func (repo *turmaRepository) CreateTurma(t turma.Turma) (turma.Turma, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.turmas.table[t.Registro]; ok {
		return turma.Turma{}, turma.ErrTurmaExists
	}
	owner, ok := repo.db.users.table[t.Professor]
	if !ok {
		return turma.Turma{}, errors.Errorf("turma owner %q not in user directory", t.Professor)
	}

	repo.db.turmas.table[t.Registro] = &t
	repo.db.turmas.order = append(repo.db.turmas.order, t.Registro)
	owner.Turmas = append(owner.Turmas, t.Registro)
	return cloneTurma(&t), nil
}

func (repo *turmaRepository) GetTurmaByRegistro(registro string) (turma.Turma, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if t, ok := repo.db.turmas.table[registro]; ok {
		return cloneTurma(t), nil
	}
	return turma.Turma{}, turma.ErrNotFound
}

func (repo *turmaRepository) QueryAllTurmas() ([]turma.Turma, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	turmas := make([]turma.Turma, 0, len(repo.db.turmas.order))
	for _, registro := range repo.db.turmas.order {
		turmas = append(turmas, cloneTurma(repo.db.turmas.table[registro]))
	}
	return turmas, nil
}

func (repo *turmaRepository) AppendAula(registro string, aula turma.Aula) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t, ok := repo.db.turmas.table[registro]
	if !ok {
		return turma.ErrNotFound
	}
	t.Aulas = append(t.Aulas, aula)
	return nil
}

func (repo *turmaRepository) AppendAtividade(registro string, atividade turma.Atividade) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t, ok := repo.db.turmas.table[registro]
	if !ok {
		return turma.ErrNotFound
	}
	if t.HasAtividade(atividade.Nome) {
		return turma.ErrAtividadeExists
	}
	t.Atividades = append(t.Atividades, atividade)
	return nil
}

// EnrollAluno checks capacity, inserts the aluno into the roster and appends
// the registro to the aluno's key list under one lock. On any failure all
// state is left untouched.
func (repo *turmaRepository) EnrollAluno(registro, matricula string) (turma.Turma, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	t, ok := repo.db.turmas.table[registro]
	if !ok {
		return turma.Turma{}, turma.ErrNotFound
	}
	if t.VagasRestantes() <= 0 {
		return turma.Turma{}, turma.ErrNoVagas
	}
	if t.HasAluno(matricula) {
		return turma.Turma{}, turma.ErrAlreadyEnrolled
	}
	aluno, ok := repo.db.users.table[matricula]
	if !ok {
		return turma.Turma{}, errors.Errorf("aluno %q not in user directory", matricula)
	}

	t.Alunos = append(t.Alunos, matricula)
	aluno.Turmas = append(aluno.Turmas, registro)
	return cloneTurma(t), nil
}
