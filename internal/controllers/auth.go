package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/assistente-financeiro/painel/internal/forms"
	"github.com/assistente-financeiro/painel/internal/httputil"
	"github.com/assistente-financeiro/painel/internal/models"
)

// RegisterAuthRoutes registers the authentication endpoints.
func (ctrl *Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.POST("/registrarUsuario", ctrl.Register)
	r.POST("/login", ctrl.Login)
	r.PUT("/atualizarUsuario", ctrl.UpdateUser)
	r.POST("/logout", ctrl.Logout)
	r.GET("/usuario", ctrl.GetCurrentUser)
}

// SessionResponse is the body answered on login and registration.
type SessionResponse struct {
	Data models.LoginResponse `json:"data"`
}

// UserResponse is the body of the user profile endpoints.
type UserResponse struct {
	Data models.User `json:"data"`
}

// @Summary		Register
// @Description	Creates a new user upstream and starts a session
// @Tags			Auth
// @Produce		json
// @Success		201				{object}	SessionResponse
// @Failure		400				{object}	ValidationResponse
// @Param			registration	body		models.Registration	true	"New user"
// @Router			/v1/auth/registrarUsuario [post]
func (ctrl *Controller) Register(c *gin.Context) {
	var registration models.Registration
	if err := httputil.BindData(c, &registration); err != nil {
		return
	}

	if errs := forms.Registration(registration); errs.Any() {
		abortValidation(c, errs)
		return
	}

	response, err := ctrl.upstream.Register(c.Request.Context(), registration)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Data: response})
}

// @Summary		Login
// @Description	Authenticates against the upstream and starts a session
// @Tags			Auth
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	ValidationResponse
// @Failure		401			{object}	httputil.HTTPError
// @Param			credentials	body		models.Credentials	true	"Credentials"
// @Router			/v1/auth/login [post]
func (ctrl *Controller) Login(c *gin.Context) {
	var credentials models.Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		return
	}

	if errs := forms.Credentials(credentials); errs.Any() {
		abortValidation(c, errs)
		return
	}

	response, err := ctrl.upstream.Login(c.Request.Context(), credentials)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: response})
}

// @Summary		Update user
// @Description	Updates the signed-in user's profile
// @Tags			Auth
// @Produce		json
// @Success		200		{object}	UserResponse
// @Failure		401		{object}	httputil.HTTPError
// @Param			user	body		models.User	true	"Profile"
// @Router			/v1/auth/atualizarUsuario [put]
func (ctrl *Controller) UpdateUser(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	var user models.User
	if err := httputil.BindData(c, &user); err != nil {
		return
	}

	updated, err := ctrl.upstream.UpdateUser(c.Request.Context(), user)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: updated})
}

// @Summary		Logout
// @Description	Ends the local session. The upstream keeps no server-side session.
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/logout [post]
func (ctrl *Controller) Logout(c *gin.Context) {
	if err := ctrl.upstream.Logout(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Current user
// @Description	Returns the profile stored in the session
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	httputil.HTTPError
// @Router			/v1/auth/usuario [get]
func (ctrl *Controller) GetCurrentUser(c *gin.Context) {
	if !ctrl.requireSession(c) {
		return
	}

	c.JSON(http.StatusOK, UserResponse{Data: ctrl.sessions.Current().User})
}
