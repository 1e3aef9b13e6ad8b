// Package ez registers typed actions on gin route groups: bind the input,
// run the handler, map the error to a status, write JSON.
package ez

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	mdw "todo-backend/internal/transport/http/middleware"
	"todo-backend/internal/transport/http/request"
	resp "todo-backend/internal/transport/http/response"
)

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l}
}

type Binder string

const (
	BindNone    Binder = "none"
	BindJSON    Binder = "json"     // body
	BindQuery   Binder = "query"    // ?a=b
	BindURI     Binder = "uri"      // /todos/:id
	BindURIJSON Binder = "uri+json" // path params first, then body
)

// Action describes one endpoint: I is the bound input, O the JSON output.
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Auth    bool // require a caller id on the context
	Status  int  // success status, 200 when zero
	Handler func(c *gin.Context, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}
	h := func(c *gin.Context) {
		if a.Auth && UserID(c) == "" {
			e.abort(c, Unauthorized("unauthorized"))
			return
		}

		var in I
		if err := bind(c, a.Binder, &in); err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				e.abort(c, &AErr{Code: http.StatusRequestEntityTooLarge, Msg: "Request body too large"})
				return
			}
			e.abort(c, request.Translate(err))
			return
		}
		if v, ok := any(&in).(request.Validator); ok {
			if err := v.Validate(); err != nil {
				e.abort(c, err)
				return
			}
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			e.abort(c, err)
			return
		}
		c.JSON(status, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodPatch:
		e.g.PATCH(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

func bind(c *gin.Context, b Binder, in any) error {
	switch b {
	case BindJSON:
		return bindJSON(c, in)
	case BindQuery:
		return c.ShouldBindQuery(in)
	case BindURI:
		return c.ShouldBindUri(in)
	case BindURIJSON:
		if err := c.ShouldBindUri(in); err != nil {
			return err
		}
		return bindJSON(c, in)
	}
	return nil
}

// bindJSON treats an empty body as {} so optional-field payloads still
// reach the struct validator.
func bindJSON(c *gin.Context, in any) error {
	err := c.ShouldBindJSON(in)
	if errors.Is(err, io.EOF) {
		return binding.Validator.ValidateStruct(in)
	}
	return err
}

func (e EZ) abort(c *gin.Context, err error) {
	ae := FromError(err)
	if ae.Code >= http.StatusInternalServerError {
		_ = c.Error(err)
		e.log.Error("request failed",
			zap.String("rid", c.GetString(mdw.KeyRequestID)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(ae.Code, resp.Error(ae.Code, ae.Msg))
}

// UserID returns the caller id set by the auth middleware, or "".
func UserID(c *gin.Context) string { return c.GetString(mdw.KeyUserID) }
