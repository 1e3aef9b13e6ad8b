package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-backend/internal/service"
	"todo-backend/internal/transport/http/ez"
	"todo-backend/internal/transport/http/request"
	resp "todo-backend/internal/transport/http/response"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler { return &UserHandler{svc: svc} }

type meOut struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Mount registers register/login on pub and /me on authed (a group that
// already runs the JWT middleware).
func (h *UserHandler) Mount(pub, authed ez.EZ) {
	ez.RegisterAction(pub, ez.Action[request.RegisterRequest, resp.Msg]{
		Method: http.MethodPost,
		Path:   "/register",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *request.RegisterRequest) (resp.Msg, error) {
			_, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
				FullName: in.FullName,
				Email:    in.Email,
				Password: in.Password,
			})
			if err != nil {
				return resp.Msg{}, err
			}
			return resp.Message("User saved successfully"), nil
		},
	})

	ez.RegisterAction(pub, ez.Action[request.LoginRequest, resp.Token]{
		Method: http.MethodPost,
		Path:   "/login",
		Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *request.LoginRequest) (resp.Token, error) {
			tok, _, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return resp.Token{}, err
			}
			return resp.Token{Data: tok, Message: "Logged in successfully"}, nil
		},
	})

	ez.RegisterAction(authed, ez.Action[struct{}, meOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (meOut, error) {
			u, err := h.svc.Get(c.Request.Context(), ez.UserID(c))
			if err != nil {
				return meOut{}, err
			}
			return meOut{ID: u.ID, FullName: u.FullName, Email: u.Email}, nil
		},
	})
}
