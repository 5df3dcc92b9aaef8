package serviceability_get

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/serviceability"
	"logistics/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	partnerID, err := strconv.ParseInt(vars["partnerId"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fact, err := h.service.Check(r.Context(), partnerID, vars["pincode"])
	if err != nil {
		switch {
		case errors.Is(err, serviceability.ErrInvalidPartnerID),
			errors.Is(err, serviceability.ErrInvalidPincode):
			h.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, serviceability.ErrPartnerNotFound):
			h.writeError(w, http.StatusNotFound, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	serviceabilityDTO := dto.Serviceability{
		Id:                     fact.ID,
		PartnerId:              fact.PartnerID,
		Pincode:                fact.Pincode,
		City:                   fact.City,
		State:                  fact.State,
		Country:                fact.Country,
		Status:                 fact.Status.String(),
		EstimatedDays:          fact.EstimatedDays,
		CodAvailable:           fact.CodAvailable,
		ReversePickupAvailable: fact.ReversePickupAvailable,
		LastChecked:            fact.LastChecked,
	}

	if err = response.JSON(w, http.StatusOK, serviceabilityDTO); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, cause error) {
	if err := response.Message(w, status, cause.Error()); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
