package controllers

import (
	"errors"
	"log"
	"net/http"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// bindJSON binds the body and answers 400 with the first failing field.
func bindJSON(c *gin.Context, obj interface{}, messages map[string]string) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		field, msg := utils.FieldError(err, messages)
		log.Printf("⚠️ %s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONFieldError(c, http.StatusBadRequest, field, msg)
		return false
	}
	return true
}

// respondValidation answers 400 when err is a service-side ValidationError.
func respondValidation(c *gin.Context, err error) bool {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		utils.JSONFieldError(c, http.StatusBadRequest, verr.Field, verr.Message)
		return true
	}
	return false
}

func serverError(c *gin.Context, action string, err error) {
	log.Printf("❌ %s: %v", action, err)
	utils.JSONError(c, http.StatusInternalServerError, "Server Error")
}
