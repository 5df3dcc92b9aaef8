package serviceability_validate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/serviceability"
	"logistics/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	validator requestValidator
	service   Service
}

func New(log handlerLogger, validator requestValidator, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		validator: validator,
		service:   service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var validateDTO dto.ServiceabilityValidateRequest
	err := json.NewDecoder(r.Body).Decode(&validateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = h.validator.Struct(validateDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	check, err := h.service.ValidatePair(
		r.Context(),
		validateDTO.PickupPincode,
		validateDTO.DeliveryPincode,
		validateDTO.CourierPartnerId,
	)
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

	res := dto.ServiceabilityValidateResponse{
		PickupServiceable:    check.PickupServiceable,
		DeliveryServiceable:  check.DeliveryServiceable,
		Serviceable:          check.Serviceable,
		PickupCodAvailable:   check.PickupCodAvailable,
		DeliveryCodAvailable: check.DeliveryCodAvailable,
		EstimatedDays:        check.EstimatedDays,
	}

	if err = response.JSON(w, http.StatusOK, res); err != nil {
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
