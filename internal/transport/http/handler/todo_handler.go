package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/domain"
	"todo-backend/internal/service"
	"todo-backend/internal/transport/http/ez"
	"todo-backend/internal/transport/http/request"
	resp "todo-backend/internal/transport/http/response"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler { return &TodoHandler{svc: svc} }

type listOut struct {
	Todos       []domain.Todo `json:"todos"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	TotalTodos  int64         `json:"totalTodos"`
}

func (h *TodoHandler) Mount(g ez.EZ) {
	ez.RegisterAction(g, ez.Action[request.ListTodosQuery, listOut]{
		Method: http.MethodGet,
		Path:   "",
		Binder: ez.BindQuery,
		Handler: func(c *gin.Context, in *request.ListTodosQuery) (listOut, error) {
			page, limit := in.Values(service.DefaultPage, service.DefaultLimit)
			p, err := h.svc.List(c.Request.Context(), page, limit)
			if err != nil {
				return listOut{}, err
			}
			items := p.Items
			if items == nil {
				items = []domain.Todo{}
			}
			return listOut{Todos: items, CurrentPage: p.Page, TotalPages: p.TotalPages, TotalTodos: p.TotalCount}, nil
		},
	})

	ez.RegisterAction(g, ez.Action[request.CreateTodoRequest, *domain.Todo]{
		Method: http.MethodPost,
		Path:   "",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *request.CreateTodoRequest) (*domain.Todo, error) {
			return h.svc.Create(c.Request.Context(), in.Text)
		},
	})

	ez.RegisterAction(g, ez.Action[request.TodoIDParam, *domain.Todo]{
		Method: http.MethodGet,
		Path:   "/:id",
		Binder: ez.BindURI,
		Handler: func(c *gin.Context, in *request.TodoIDParam) (*domain.Todo, error) {
			return h.svc.Get(c.Request.Context(), in.ID)
		},
	})

	ez.RegisterAction(g, ez.Action[request.UpdateTodoRequest, *domain.Todo]{
		Method: http.MethodPut,
		Path:   "/:id",
		Binder: ez.BindURIJSON,
		Handler: func(c *gin.Context, in *request.UpdateTodoRequest) (*domain.Todo, error) {
			return h.svc.Update(c.Request.Context(), in.ID, domain.TodoPatch{Text: in.Text})
		},
	})

	ez.RegisterAction(g, ez.Action[request.TodoIDParam, resp.Msg]{
		Method: http.MethodDelete,
		Path:   "/:id",
		Binder: ez.BindURI,
		Handler: func(c *gin.Context, in *request.TodoIDParam) (resp.Msg, error) {
			if err := h.svc.Delete(c.Request.Context(), in.ID); err != nil {
				return resp.Msg{}, err
			}
			return resp.Message("Todo deleted"), nil
		},
	})
}
