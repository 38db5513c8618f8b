package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samplestore/backend/internal/domain/shared"
	"github.com/samplestore/backend/internal/interfaces/http/dto"
)

// parseUUIDParam parses a UUID path parameter, writing a 400 response and
// returning false when it is malformed
func parseUUIDParam(c *gin.Context, h *BaseHandler, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.Error(c, dto.ErrCodeInvalidInput, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// bindListRequest binds pagination query parameters, falling back to
// defaults for anything omitted
func bindListRequest(c *gin.Context) (dto.ListRequest, error) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}
	if req.OrderBy == "" {
		req.OrderBy = "created_at"
	}
	if req.OrderDir == "" {
		req.OrderDir = "desc"
	}
	return req, nil
}

// toFilter converts a list request into a repository filter
func toFilter(req dto.ListRequest) shared.Filter {
	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}
}
