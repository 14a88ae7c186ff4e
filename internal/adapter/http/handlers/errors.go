package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pavelpernicka/scoutcomp/internal/adapter/http/middleware"
	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/pkg/apierrors"
)

type errMapping struct {
	status int
	msgKey string
}

var serviceErrMappings = []struct {
	err     error
	mapping errMapping
}{
	{domain.ErrTaskNotFound, errMapping{http.StatusNotFound, apierrors.MsgTaskNotFound}},
	{domain.ErrTaskArchived, errMapping{http.StatusGone, apierrors.MsgTaskArchived}},
	{domain.ErrTaskRestricted, errMapping{http.StatusForbidden, apierrors.MsgTaskRestricted}},
	{domain.ErrTaskNotActive, errMapping{http.StatusBadRequest, apierrors.MsgTaskNotActive}},
	{domain.ErrTaskExpired, errMapping{http.StatusBadRequest, apierrors.MsgTaskExpired}},
	{domain.ErrPeriodConfig, errMapping{http.StatusBadRequest, apierrors.MsgPeriodConfig}},
	{domain.ErrLimitExceeded, errMapping{http.StatusBadRequest, apierrors.MsgLimitReached}},
	{domain.ErrVariantNotFound, errMapping{http.StatusNotFound, apierrors.MsgVariantNotFound}},
	{domain.ErrInvalidVariant, errMapping{http.StatusBadRequest, apierrors.MsgInvalidVariant}},
	{domain.ErrVariantPosition, errMapping{http.StatusBadRequest, apierrors.MsgVariantPositionTaken}},
	{domain.ErrCompletionNotFound, errMapping{http.StatusNotFound, apierrors.MsgCompletionNotFound}},
	{domain.ErrStatusNotTerminal, errMapping{http.StatusBadRequest, apierrors.MsgStatusNotTerminal}},
	{domain.ErrCompletionOrphaned, errMapping{http.StatusConflict, apierrors.MsgCompletionConflict}},
	{domain.ErrMemberNotFound, errMapping{http.StatusNotFound, apierrors.MsgMemberNotFound}},
	{domain.ErrMemberInactive, errMapping{http.StatusForbidden, apierrors.MsgMemberInactive}},
	{domain.ErrTeamNotFound, errMapping{http.StatusNotFound, apierrors.MsgTeamNotFound}},
	{domain.ErrOutsideManagedTeams, errMapping{http.StatusForbidden, apierrors.MsgOutsideManagedTeams}},
	{domain.ErrCategoryNotFound, errMapping{http.StatusNotFound, apierrors.MsgCategoryNotFound}},
	{domain.ErrComponentNotFound, errMapping{http.StatusNotFound, apierrors.MsgComponentNotFound}},
	{domain.ErrInvalidMetric, errMapping{http.StatusBadRequest, apierrors.MsgInvalidMetric}},
}

// respondServiceError maps a known domain sentinel to its HTTP code and
// translated message. Anything else is logged and reported as a 500.
func respondServiceError(c *gin.Context, err error, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	for _, entry := range serviceErrMappings {
		if errors.Is(err, entry.err) {
			c.JSON(
				entry.mapping.status,
				apierrors.CreateError(entry.mapping.status, entry.mapping.msgKey, lang),
			)
			return
		}
	}

	zap.L().Error(logMsg, append(fields, zap.Error(err))...)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
	)
}

func respondBadRequest(c *gin.Context, msgKey string) {
	lang := middleware.GetLang(c)
	c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, msgKey, lang))
}

// parseIDParam reads a positive uint64 path parameter; 0 signals a bad value
// after the error response has already been written.
func parseIDParam(c *gin.Context, name string) uint64 {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, apierrors.MsgInvalidID)
		return 0
	}
	return id
}
