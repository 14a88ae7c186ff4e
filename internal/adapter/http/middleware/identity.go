package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pavelpernicka/scoutcomp/internal/core/domain"
	"github.com/pavelpernicka/scoutcomp/internal/core/ports"
	"github.com/pavelpernicka/scoutcomp/pkg/apierrors"
)

const actorKey = "actor"

// IdentityMiddleware resolves the X-Member-ID header set by the auth gateway
// into a full actor. Requests without a resolvable, active member are rejected.
func IdentityMiddleware(members ports.MemberRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		memberID, err := strconv.ParseUint(c.GetHeader("X-Member-ID"), 10, 64)
		if err != nil || memberID == 0 {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		member, err := members.GetByID(c.Request.Context(), memberID)
		if err != nil {
			if errors.Is(err, domain.ErrMemberNotFound) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
				)
				return
			}

			zap.L().Error("failed to resolve member identity", zap.Uint64("member_id", memberID), zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
			)
			return
		}

		if !member.IsActive {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgMemberInactive, lang),
			)
			return
		}

		actor := domain.Actor{Member: member}
		if member.Role == domain.RoleGroupAdmin {
			managed, err := members.ManagedTeamIDs(c.Request.Context(), memberID)
			if err != nil {
				zap.L().Error("failed to load managed teams", zap.Uint64("member_id", memberID), zap.Error(err))
				c.AbortWithStatusJSON(
					http.StatusInternalServerError,
					apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternal, lang),
				)
				return
			}
			actor.ManagedTeamIDs = managed
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

func GetActor(c *gin.Context) domain.Actor {
	if value, exists := c.Get(actorKey); exists {
		if actor, ok := value.(domain.Actor); ok {
			return actor
		}
	}
	return domain.Actor{}
}

// RequireAdmin rejects everyone but full admins.
func RequireAdmin() gin.HandlerFunc {
	return requireRole(func(actor domain.Actor) bool {
		return actor.IsAdmin()
	})
}

// RequireReviewer admits full admins and group admins.
func RequireReviewer() gin.HandlerFunc {
	return requireRole(func(actor domain.Actor) bool {
		return actor.IsAdmin() || actor.IsGroupAdmin()
	})
}

func requireRole(allowed func(domain.Actor) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !allowed(GetActor(c)) {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, lang),
			)
			return
		}
		c.Next()
	}
}
