package api

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: true, Message: message})
}

func Fail(c *gin.Context, status int, err string) {
	c.JSON(status, Response{Success: false, Error: err})
}
