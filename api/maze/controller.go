package mazeapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mazemesh/mazemesh/domain"
	"github.com/mazemesh/mazemesh/maze"
	"github.com/mazemesh/mazemesh/service/i"
)

// Controller manages maze generation and retrieval endpoints.
type Controller struct {
	mazeService i.MazeGenerator
}

// NewController initializes a maze Controller.
func NewController(mazeService i.MazeGenerator) (*Controller, error) {
	if mazeService == nil {
		return nil, errors.New("maze service is required")
	}
	return &Controller{
		mazeService: mazeService,
	}, nil
}

// Register registers the maze routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", c.create)
		mazes.GET("/:ID", c.byID)
		mazes.GET("/:ID/mesh", c.mesh)
	}
}

// create handles maze generation requests.
func (c *Controller) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := c.mazeService.Create(ctx, request.Width, request.Height, request.Seed)
	if err != nil {
		if errors.Is(err, maze.ErrTooSmall) || errors.Is(err, maze.ErrEvenDimension) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// byID retrieves a previously generated maze.
func (c *Controller) byID(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	record, err := c.mazeService.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while loading maze"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// mesh streams the maze as Wavefront OBJ text. Passing ?solution=true
// highlights the solution path cells.
func (c *Controller) mesh(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}

	includeSolution := ctx.Query("solution") == "true"

	data, err := c.mazeService.MeshOBJ(ctx, id, includeSolution)
	if err != nil {
		if errors.Is(err, domain.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while rendering mesh"})
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="maze.obj"`)
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}
