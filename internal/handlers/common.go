package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform failure body: the HTTP status mirrored as
// a numeric code plus a fixed message.
type ErrorResponse struct {
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "Internal Server Error",
}

func abortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: status, Message: errorMessages[status]})
}

// pageParam reads the 1-based page query parameter, falling back to 1
// when absent or non-numeric.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
