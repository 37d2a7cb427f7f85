package echoapi

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// professorMiddleware rejects any request whose token does not belong to a
// professor. The services re-check the role on the live user record; this
// gate only keeps wrong-role traffic out of the handlers.
func professorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.IsProfessor {
				return next(ctx)
			}
			return errHTTPForbidden
		}
	}
}

// alunoMiddleware rejects any request whose token does not belong to an aluno.
func alunoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return errors.Wrap(err, "getting context claims")
			}
			if claims.IsAluno {
				return next(ctx)
			}
			return errHTTPForbidden
		}
	}
}
