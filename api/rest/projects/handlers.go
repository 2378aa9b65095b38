package projects

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/server/internal/errors"
)

// creates the handler for the portfolio overview listing
func Handler(repo Lister) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to load projects", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Projects: list,
			Count:    len(list),
		})
	}
}
