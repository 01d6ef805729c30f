package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"clinic-registry-server/internal/middleware"
	"clinic-registry-server/internal/registry"
	"clinic-registry-server/internal/utils"
)

// respondServiceError maps a creation-pipeline error onto the HTTP
// error taxonomy. Storage errors with no known mapping are logged
// with the request id and surfaced as a generic 500, never verbatim.
func respondServiceError(c *gin.Context, logger *logrus.Entry, err error) {
	var fieldErrs registry.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		utils.ValidationFailed(c, fieldErrs)
	case errors.Is(err, registry.ErrRoleMismatch),
		errors.Is(err, registry.ErrDuplicateEmail),
		errors.Is(err, registry.ErrDuplicateUsername),
		errors.Is(err, registry.ErrDuplicatePhone):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, registry.ErrNotFound):
		utils.NotFound(c, err.Error())
	default:
		logger.WithFields(logrus.Fields{
			"request_id": middleware.GetRequestIDFromContext(c),
			"error":      err.Error(),
		}).Error("request failed on storage error")
		utils.InternalServerError(c, "Internal server error")
	}
}

// parseID parses a numeric path parameter.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// respondStorageError handles errors from the plain gateway queries:
// FK RESTRICT failures become 400s, anything else a logged 500.
func respondStorageError(c *gin.Context, logger *logrus.Entry, err error, referencedMsg string) {
	if registry.IsReferenced(err) {
		utils.BadRequest(c, referencedMsg)
		return
	}
	if registry.IsDuplicate(err) {
		utils.BadRequest(c, "A record with the same unique value already exists")
		return
	}
	logger.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestIDFromContext(c),
		"error":      err.Error(),
	}).Error("request failed on storage error")
	utils.InternalServerError(c, "Internal server error")
}
