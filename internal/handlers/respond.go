package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rogue-drones/workflow/internal/types"
)

// RespondError maps the error taxonomy onto HTTP statuses: NotFound->404,
// Conflict->400, Validation->422, Auth->401/403. Anything unrecognized is
// logged and returned as a 500 without detail.
func RespondError(ctx *gin.Context, err error) {
	var notFound *types.NotFoundError
	var conflict *types.ConflictError
	var validation *types.ValidationError
	var authErr *types.AuthError

	switch {
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": conflict.Error()})
	case errors.As(err, &validation):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": validation.Error()})
	case errors.As(err, &authErr):
		status := http.StatusUnauthorized
		if authErr.Forbidden {
			status = http.StatusForbidden
		}
		ctx.JSON(status, gin.H{"error": authErr.Error()})
	default:
		log.Printf("Unhandled error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parsePagination(ctx *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	if skip < 0 {
		skip = 0
	}

	if limit < 0 {
		limit = 0
	}

	return skip, limit
}
