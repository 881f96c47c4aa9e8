package utils

import "github.com/gin-gonic/gin"

// JSONError writes the error envelope every handler uses, so failures always
// look the same to clients. Success responses return the resource itself.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": "error", "message": message})
}
