package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/gtpim/turmas/api/echo"
	"github.com/gtpim/turmas/core"
	"github.com/gtpim/turmas/core/turma"
	"github.com/gtpim/turmas/core/user"
	logsvc "github.com/gtpim/turmas/services/logger"
	inmemdb "github.com/gtpim/turmas/storage/database/inmem"
)

func main() {
	std := log.New(os.Stdout, core.Conf.GetString("appName")+" : ", log.LstdFlags|log.Lshortfile)

	var logger core.Logger
	if core.Conf.GetBool("debug") || core.Conf.GetString("rollbarToken") == "" {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std)
	}

	// set up DB; everything lives in memory for the process lifetime
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal("opening database", err)
	}

	// set up services
	usrSvc := user.NewService(inmemdb.NewUserRepository(db))
	turmaSvc := turma.NewService(inmemdb.NewTurmaRepository(db))

	if core.Conf.GetBool("seedDemoData") {
		if err := seedDemoData(usrSvc, turmaSvc); err != nil {
			logger.Fatal("seeding demo data", err)
		}
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(
		&echoapi.Options{
			Address:  core.Conf.GetString("serverAddress"),
			Logger:   logger,
			UserSvc:  usrSvc,
			TurmaSvc: turmaSvc,
			Shutdown: func() { shutdownCh <- syscall.SIGTERM },
		},
	)
	go app.Start()
	logger.Info("server started on " + core.Conf.GetString("serverAddress"))

	<-shutdownCh
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		logger.Error("stopping server", err)
	}
}

// seedDemoData preloads a couple of professores, an aluno and two turmas so a
// fresh process has something to show. Everything goes through the services,
// so the usual invariants apply.
func seedDemoData(usrSvc *user.Service, turmaSvc *turma.Service) error {
	silva, err := usrSvc.Create(user.NewUser{Nome: "Dr. Silva", Matricula: "P001", Funcao: user.FuncaoProfessor})
	if err != nil {
		return err
	}
	if _, err = usrSvc.Create(user.NewUser{Nome: "Ms. Oliveira", Matricula: "P002", Funcao: user.FuncaoProfessor}); err != nil {
		return err
	}
	joao, err := usrSvc.Create(user.NewUser{Nome: "João Aluno", Matricula: "A010", Funcao: user.FuncaoAluno})
	if err != nil {
		return err
	}

	poo, err := turmaSvc.Create(silva, turma.NewTurma{Curso: "Engenharia", Materia: "POO", Vagas: 15})
	if err != nil {
		return err
	}
	if _, err = turmaSvc.Create(silva, turma.NewTurma{Curso: "Engenharia", Materia: "BD", Vagas: 10}); err != nil {
		return err
	}

	_, err = turmaSvc.Enroll(joao, poo.Registro)
	return err
}
