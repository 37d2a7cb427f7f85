package user_test

import (
	"testing"

	"github.com/gtpim/turmas/core"
	"github.com/gtpim/turmas/core/user"
	inmemdb "github.com/gtpim/turmas/storage/database/inmem"
)

func setup(t *testing.T) *user.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup(): %v", err)
	}
	return user.NewService(inmemdb.NewUserRepository(db))
}

func TestService_Create(t *testing.T) {
	svc := setup(t)

	usr, err := svc.Create(user.NewUser{Nome: "Dr. Silva", Matricula: "P001", Funcao: user.FuncaoProfessor})
	if err != nil {
		t.Fatalf("Create(): %v", err)
	}
	if !usr.IsProfessor() || usr.IsAluno() {
		t.Errorf("Create() funcao = %q; IsProfessor/IsAluno inconsistent", usr.Funcao)
	}
	if usr.CreatedAt.IsZero() {
		t.Errorf("Create() CreatedAt not set")
	}

	// duplicate matricula, even for a different funcao
	_, err = svc.Create(user.NewUser{Nome: "Other", Matricula: "P001", Funcao: user.FuncaoAluno})
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("Create() dup error = %T(%v), want *core.ValidationError", err, err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "matricula" {
		t.Errorf("Create() dup fields = %+v, want a matricula field error", vErr.Fields)
	}

	// unrecognized funcao
	if _, err = svc.Create(user.NewUser{Nome: "X", Matricula: "Z001", Funcao: "diretor"}); err != user.ErrInvalidFuncao {
		t.Errorf("Create() bad funcao error = %v, want ErrInvalidFuncao", err)
	}
}

func TestService_GetByMatricula(t *testing.T) {
	svc := setup(t)

	if _, err := svc.Create(user.NewUser{Nome: "João", Matricula: "A010", Funcao: user.FuncaoAluno}); err != nil {
		t.Fatalf("Create(): %v", err)
	}

	usr, err := svc.GetByMatricula("A010")
	if err != nil {
		t.Fatalf("GetByMatricula(): %v", err)
	}
	if usr.Nome != "João" {
		t.Errorf("GetByMatricula() nome = %q, want João", usr.Nome)
	}

	// absence is a normal outcome
	if _, err = svc.GetByMatricula("A999"); err != user.ErrNotFound {
		t.Errorf("GetByMatricula() unknown error = %v, want ErrNotFound", err)
	}
}

func TestNewUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		data    user.NewUser
		wantErr bool
	}{
		{name: "ok", data: user.NewUser{Nome: "Dr. Silva", Matricula: "P001", Funcao: "professor"}},
		{name: "funcao case folded", data: user.NewUser{Nome: "Dr. Silva", Matricula: "P001", Funcao: "PROFESSOR"}},
		{name: "missing nome", data: user.NewUser{Matricula: "P001", Funcao: "professor"}, wantErr: true},
		{name: "missing matricula", data: user.NewUser{Nome: "Dr. Silva", Funcao: "professor"}, wantErr: true},
		{name: "bad funcao", data: user.NewUser{Nome: "Dr. Silva", Matricula: "P001", Funcao: "diretor"}, wantErr: true},
		{name: "matricula with symbols", data: user.NewUser{Nome: "X", Matricula: "P-0/01", Funcao: "aluno"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.data.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
