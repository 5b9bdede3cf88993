package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mart-api/dtos"
	"mart-api/services"
	"mart-api/utils/response"
)

func Register(c *gin.Context) {
	var input dtos.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FailWithError(c, http.StatusBadRequest, "Invalid registration data", err)
		return
	}

	service := services.NewAuthService()
	result, err := service.Register(input)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, result.Message, gin.H{
		"token": result.Token,
		"role":  result.Role,
	})
}

func Login(c *gin.Context) {
	var input dtos.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.FailWithError(c, http.StatusBadRequest, "Invalid login data", err)
		return
	}

	service := services.NewAuthService()
	result, err := service.Login(input)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, err.Error())
		return
	}

	response.Success(c, http.StatusOK, result.Message, gin.H{
		"token": result.Token,
		"role":  result.Role,
	})
}
