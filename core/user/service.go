package user

import (
	"errors"
	"time"

	"github.com/gtpim/turmas/core"
)

var (
	// errors
	ErrNotFound        = errors.New("user not found")
	ErrMatriculaExists = errors.New("a user with this matricula already exists")
	ErrInvalidFuncao   = errors.New("invalid funcao; use 'professor' or 'aluno'")
)

type (
	Repository interface {
		// CreateUser inserts the user, failing with ErrMatriculaExists if the
		// matricula is already taken. The check and the insert are atomic.
		CreateUser(user User) (User, error)
		GetUserByMatricula(matricula string) (User, error)
		QueryAllUsers() ([]User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nu NewUser) (User, error) {
	switch nu.Funcao {
	case FuncaoProfessor, FuncaoAluno:
	default:
		return User{}, ErrInvalidFuncao
	}

	usr := User{
		Nome:      nu.Nome,
		Matricula: nu.Matricula,
		Funcao:    nu.Funcao,
		CreatedAt: time.Now().UTC(),
	}
	usr, err := svc.repo.CreateUser(usr)
	if err != nil {
		if err == ErrMatriculaExists {
			return User{}, core.NewValidationError(err, core.FieldError{Field: "matricula", Error: err.Error()})
		}
		return User{}, err
	}
	return usr, nil
}

// GetByMatricula resolves a stored identifier back to its User.
// Absence is a normal outcome reported as ErrNotFound; it is how login
// failures and broken session references surface.
func (svc *Service) GetByMatricula(matricula string) (User, error) {
	return svc.repo.GetUserByMatricula(core.CleanString(matricula))
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}
