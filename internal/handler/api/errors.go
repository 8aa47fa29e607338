package api

import (
	"net/http"

	"tutor-scheduling/internal/domain/scheduling"
	resdto "tutor-scheduling/internal/handler/dto/response"
	"tutor-scheduling/internal/handler/httperr"
	"tutor-scheduling/internal/pkg/errs"
	"tutor-scheduling/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithSchedulingError maps scheduling failures onto HTTP statuses.
// Slot validation failures carry their kinds in detail.
func abortWithSchedulingError(c *gin.Context, err error, fallback string) {
	var verr *scheduling.ValidationError
	hasKinds := errs.As(err, &verr)

	switch {
	case queries.IsNotFound(err):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
	case errs.Is(err, scheduling.ErrAlreadyBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot already booked", kindsDetail(verr))
	case hasKinds:
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Slot is not bookable", kindsDetail(verr))
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

func kindsDetail(verr *scheduling.ValidationError) any {
	if verr == nil {
		return nil
	}
	return gin.H{"kinds": resdto.Kinds(verr.Kinds)}
}
