package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/gtpim/turmas/core/turma"
	"github.com/gtpim/turmas/core/user"
)

type turmaApi struct {
	svc    *turma.Service
	usrSvc *user.Service
}

func registerTurmaAPI(g *echo.Group, jwt echo.MiddlewareFunc, usrSvc *user.Service, svc *turma.Service) {
	api := turmaApi{svc: svc, usrSvc: usrSvc}

	g.GET("/dashboard", api.dashboard, jwt)
	g.GET("/atividades/pendentes", api.queryPendentes, jwt, alunoMiddleware())

	tg := g.Group("/turmas", jwt)
	tg.GET("", api.query)
	tg.POST("", api.create, professorMiddleware())
	tg.GET("/lecionadas", api.queryLecionadas, professorMiddleware())
	tg.GET("/matriculadas", api.queryMatriculadas, alunoMiddleware())

	// detail endpoints
	dg := tg.Group("/:registro")
	dg.GET("", api.retrieve)
	dg.POST("/aulas", api.addAula, professorMiddleware())
	dg.POST("/atividades", api.addAtividade, professorMiddleware())
	dg.POST("/matricula", api.enroll, alunoMiddleware())
	dg.GET("/atividades/:nome", api.findAtividade, alunoMiddleware())
}

// Handlers

func (api *turmaApi) dashboard(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return err
	}
	users, err := api.usrSvc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying users")
	}
	summaries, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying turmas")
	}
	return ctx.JSON(http.StatusOK, DashboardResponse{
		Usuario:       usr.Nome,
		Funcao:        usr.Funcao,
		TotalUsuarios: len(users),
		Turmas:        summaries,
	})
}

func (api *turmaApi) query(ctx echo.Context) error {
	summaries, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying turmas")
	}
	return ctx.JSON(http.StatusOK, summaries)
}

func (api *turmaApi) create(ctx echo.Context) error {
	var data turma.NewTurma
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTurma")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return err
	}
	t, err := api.svc.Create(usr, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, t.Summary())
}

func (api *turmaApi) queryLecionadas(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return err
	}
	turmas, err := api.svc.QueryByProfessor(usr)
	if err != nil {
		return err
	}
	summaries := make([]turma.Summary, 0, len(turmas))
	for i := range turmas {
		summaries = append(summaries, turmas[i].Summary())
	}
	return ctx.JSON(http.StatusOK, summaries)
}

func (api *turmaApi) queryMatriculadas(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return err
	}
	enrolled, err := api.svc.QueryByAluno(usr)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, enrolled)
}

func (api *turmaApi) retrieve(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return err
	}
	t, err := api.svc.Get(usr, ctx.Param("registro"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newTurmaDetailResponse(t, usr.IsProfessor()))
}

func (api *turmaApi) addAula(ctx echo.Context) error {
	var data turma.NewAula
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAula")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return err
	}
	aula, err := api.svc.AddAula(usr, ctx.Param("registro"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, aula.Details())
}

func (api *turmaApi) addAtividade(ctx echo.Context) error {
	var data turma.NewAtividade
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAtividade")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return err
	}
	atividade, err := api.svc.AddAtividade(usr, ctx.Param("registro"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, atividade.Details())
}

func (api *turmaApi) enroll(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return err
	}
	t, err := api.svc.Enroll(usr, ctx.Param("registro"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, t.Summary())
}

func (api *turmaApi) findAtividade(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return err
	}
	atividade, err := api.svc.FindAtividade(usr, ctx.Param("registro"), ctx.Param("nome"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, atividade.Details())
}

func (api *turmaApi) queryPendentes(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.usrSvc)
	if err != nil {
		return err
	}
	pending, err := api.svc.PendingAtividades(usr)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pending)
}
