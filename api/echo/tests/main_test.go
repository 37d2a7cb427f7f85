package tests

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	echoapi "github.com/gtpim/turmas/api/echo"
	"github.com/gtpim/turmas/core"
	"github.com/gtpim/turmas/core/turma"
	"github.com/gtpim/turmas/core/user"
	logsvc "github.com/gtpim/turmas/services/logger"
	inmemdb "github.com/gtpim/turmas/storage/database/inmem"
)

var (
	app      echoapi.Server
	usrSvc   *user.Service
	turmaSvc *turma.Service

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
	errForbidden    = httpErr{Error: "permission denied"}
)

func TestMain(m *testing.M) {
	core.Conf.Set("debug", false)
	core.Conf.Set("testMode", true)

	// set up DB & services
	db, err := inmemdb.Open()
	if err != nil {
		log.Fatalf("inmemdb.Open(): %v", err)
	}
	usrSvc = user.NewService(inmemdb.NewUserRepository(db))
	turmaSvc = turma.NewService(inmemdb.NewTurmaRepository(db))

	// set up server
	app = echoapi.NewServer(
		&echoapi.Options{
			DisableReqLogs: true,
			Logger:         logsvc.NewStdLogger(log.New(os.Stdout, "test ", log.LstdFlags)),
			UserSvc:        usrSvc,
			TurmaSvc:       turmaSvc,
		},
	)

	os.Exit(m.Run())
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func createUser(t *testing.T, nome, matricula, funcao string) user.User {
	usr, err := usrSvc.Create(user.NewUser{Nome: nome, Matricula: matricula, Funcao: funcao})
	if err != nil {
		t.Fatalf("createUser(%s): %v", matricula, err)
	}
	return usr
}

func refreshUser(t *testing.T, usr user.User) user.User {
	usr, err := usrSvc.GetByMatricula(usr.Matricula)
	if err != nil {
		t.Fatalf("refreshUser(): %v", err)
	}
	return usr
}

func getToken(t *testing.T, usr user.User) string {
	claims := echoapi.GetUserClaims(usr)
	token, err := echoapi.GenerateToken(claims)
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
