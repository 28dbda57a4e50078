package controllers

import (
	"net/http"

	"travel-backend/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
}

func NewCustomerController(svc *services.CustomerService) *CustomerController {
	return &CustomerController{CustomerSvc: svc}
}

// GetCustomers (GET /api/admin/customers) admin only
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.ListCustomers()
	if err != nil {
		serverError(c, "list customers", err)
		return
	}
	c.JSON(http.StatusOK, customers)
}
