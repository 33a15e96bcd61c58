package controllers

import (
	"errors"
	"strconv"

	"github.com/PatrickBizetto/delivery-api-patrick/entity"
	"github.com/PatrickBizetto/delivery-api-patrick/pkg/resp"
	"github.com/PatrickBizetto/delivery-api-patrick/services"
	"github.com/PatrickBizetto/delivery-api-patrick/utils"

	"github.com/gin-gonic/gin"
)

func currentIdentity(c *gin.Context) services.Identity {
	return services.Identity{
		UserID:       utils.CurrentUserID(c),
		IsAdmin:      utils.CurrentRole(c) == entity.RoleAdmin,
		ClientID:     utils.CurrentClientID(c),
		RestaurantID: utils.CurrentRestaurantID(c),
	}
}

// idParam parses a numeric path parameter; on failure it already wrote the
// 400 response.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// writeServiceError maps the services error taxonomy onto HTTP statuses.
// Authorization failures are written by the handlers themselves (403) so they
// are never confused with not-found here.
func writeServiceError(c *gin.Context, err error) {
	var (
		unavailable     *services.ProductUnavailableError
		notInRestaurant *services.ProductNotInRestaurantError
		badTransition   *services.InvalidTransitionError
		notCancellable  *services.NotCancellableError
	)

	switch {
	case errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound):
		resp.NotFound(c, err.Error())

	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrPhoneTaken),
		errors.Is(err, services.ErrProductInUse),
		errors.Is(err, services.ErrStatusConflict):
		resp.Conflict(c, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())

	case errors.Is(err, services.ErrClientInactive),
		errors.Is(err, services.ErrRestaurantInactive),
		errors.Is(err, services.ErrInvalidCEP),
		errors.Is(err, services.ErrEmptyItems),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrRestaurantRequired),
		errors.As(err, &unavailable),
		errors.As(err, &notInRestaurant),
		errors.As(err, &badTransition),
		errors.As(err, &notCancellable):
		resp.BadRequest(c, err.Error())

	default:
		resp.ServerError(c, err)
	}
}
