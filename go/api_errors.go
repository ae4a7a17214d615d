package petnamesserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	catapp "github.com/Apurer/pet-name-generator/internal/domains/catalog/application"
	apierrors "github.com/Apurer/pet-name-generator/internal/shared/errors"
)

var catalogResponder = apierrors.NewChainedResponder("", mapCatalogError)

// mapCatalogError keeps the service message as the problem detail.
func mapCatalogError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, catapp.ErrPetTypeNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, catapp.ErrInvalidInput):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	case errors.Is(err, catapp.ErrEmptyCatalog):
		return apierrors.ErrInternal.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func respondCatalogServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	catalogResponder.RespondError(c, err)
}

func respondInvalidParameter(c *gin.Context, parameter string, err error) {
	catalogResponder.Respond(c, apierrors.NewUnprocessableProblem(parameter, err))
}
