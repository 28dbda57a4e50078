package controllers

import (
	"errors"
	"net/http"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

var signupMessages = map[string]string{
	"username": "Username must be at least 3 characters.",
	"email":    "Please enter a valid email address.",
	"password": "Password must be at least 8 characters with letters and numbers.",
}

// Signup (POST /api/auth/signup)
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !bindJSON(c, &req, signupMessages) {
		return
	}

	resp, err := ctrl.AuthSvc.Signup(req)
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusBadRequest, "User already exists")
		return
	case errors.Is(err, services.ErrUsernameTaken):
		utils.JSONFieldError(c, http.StatusBadRequest, "username", "This username is already taken.")
		return
	case err != nil:
		serverError(c, "signup", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login (POST /api/auth/login)
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req, map[string]string{"email": "Please enter a valid email address.", "password": "Password is required."}) {
		return
	}

	resp, err := ctrl.AuthSvc.Login(req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		serverError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResetPassword (POST /api/auth/reset-password)
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if !bindJSON(c, &req, map[string]string{"newPassword": signupMessages["password"]}) {
		return
	}

	err := ctrl.AuthSvc.ResetPassword(req)
	if errors.Is(err, services.ErrEmailNotFound) {
		utils.JSONFieldError(c, http.StatusNotFound, "email", "Email not found.")
		return
	}
	if err != nil {
		serverError(c, "reset password", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
