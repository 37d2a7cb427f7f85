package inmemdb

import (
	"sync"

	"github.com/gtpim/turmas/core/turma"
	"github.com/gtpim/turmas/core/user"
)

type (
	// DB holds the two process-wide directories: all users by matricula and
	// all turmas by registro. State lives for the process lifetime; there is
	// no teardown and no persistence.
	//
	// A single RWMutex guards both tables. Lockstep mutations (a turma plus
	// its owner's key list, a roster plus an aluno's key list) span both
	// tables and must commit as one unit; per-table locks could not give us
	// that.
	DB struct {
		mutex  sync.RWMutex
		users  *userTable
		turmas *turmaTable
	}

	userTable struct {
		table map[string]*user.User
	}

	turmaTable struct {
		table map[string]*turma.Turma
		order []string // registros in insertion order
	}
)

func Open() (*DB, error) {
	db := &DB{
		users:  &userTable{table: make(map[string]*user.User)},
		turmas: &turmaTable{table: make(map[string]*turma.Turma)},
	}
	return db, nil
}

// cloneUser returns a detached copy; callers must never see the stored slices.
func cloneUser(u *user.User) user.User {
	out := *u
	out.Turmas = append([]string(nil), u.Turmas...)
	return out
}

// cloneTurma returns a detached copy; callers must never see the stored slices.
func cloneTurma(t *turma.Turma) turma.Turma {
	out := *t
	out.Alunos = append([]string(nil), t.Alunos...)
	out.Aulas = append([]turma.Aula(nil), t.Aulas...)
	out.Atividades = append([]turma.Atividade(nil), t.Atividades...)
	return out
}
