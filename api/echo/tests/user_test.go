package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gtpim/turmas/core/user"
)

func TestUserApi_register(t *testing.T) {
	createUser(t, "Taken", "UR001", user.FuncaoProfessor)

	tests := []httpTest{
		{
			name:     "ok",
			body:     marchallObj(t, user.NewUser{Nome: "Dr. Novo", Matricula: "UR002", Funcao: "professor"}),
			wantCode: http.StatusCreated,
		},
		{
			name:     "duplicate matricula",
			body:     marchallObj(t, user.NewUser{Nome: "Imposter", Matricula: "UR001", Funcao: "aluno"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"matricula": "a user with this matricula already exists"}),
		},
		{
			name:     "invalid funcao",
			body:     marchallObj(t, user.NewUser{Nome: "X", Matricula: "UR003", Funcao: "diretor"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"funcao": "funcao must be one of 'professor' or 'aluno'"}),
		},
		{
			name:     "missing nome",
			body:     marchallObj(t, user.NewUser{Matricula: "UR004", Funcao: "aluno"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"nome": "this field is required"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/users/register", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusCreated {
				var usr user.User
				if err := json.Unmarshal(rec.Body.Bytes(), &usr); err != nil {
					t.Fatalf("unmarshalling response: %v", err)
				}
				assert.Equal(t, "UR002", usr.Matricula)
				assert.Equal(t, user.FuncaoProfessor, usr.Funcao)
			}
		})
	}
}

func TestUserApi_login(t *testing.T) {
	createUser(t, "Dr. Login", "UL001", user.FuncaoProfessor)

	t.Run("ok", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/users/login", marchallObj(t, map[string]string{"matricula": "UL001"}))
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v, want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		assert.NotEmpty(t, resp.Token)
	})

	tests := []httpTest{
		{
			name:     "unknown matricula",
			body:     marchallObj(t, map[string]string{"matricula": "UL999"}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "matricula not found"}),
		},
		{
			name:     "missing matricula",
			body:     marchallObj(t, map[string]string{}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"matricula": "this field is required"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/users/login", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func TestUserApi_retrieveSelf(t *testing.T) {
	usr := createUser(t, "Eu Mesmo", "UM001", user.FuncaoAluno)
	token := getToken(t, usr)

	t.Run("ok", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/users/me", token)
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
		}
		var got user.User
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshalling response: %v", err)
		}
		assert.Equal(t, usr.Matricula, got.Matricula)
		assert.Equal(t, usr.Nome, got.Nome)
	})

	t.Run("no token", func(t *testing.T) {
		tt := httpTest{
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		}
		req, rec := newRequest(http.MethodGet, "/v1/users/me")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func TestUserApi_refreshToken(t *testing.T) {
	usr := createUser(t, "Renovado", "UT001", user.FuncaoProfessor)
	token := getToken(t, usr)

	req, rec := newAuthRequest(http.MethodPost, "/v1/users/token-refresh", token)
	app.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("code = %v; body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshalling response: %v", err)
	}
	assert.NotEmpty(t, resp.Token)
}
