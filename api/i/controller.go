package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the given group.
type Controller interface {
	Register(*gin.RouterGroup)
}
