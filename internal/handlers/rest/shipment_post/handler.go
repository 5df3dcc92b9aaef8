package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/converters"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/shipment"
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
	var shipmentDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = h.validator.Struct(shipmentDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	draft, err := converters.ShipmentDraftFromDTO(shipmentDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.service.Create(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, entities.ErrUnknownValue):
			h.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, shipment.ErrTrackingNumberTaken):
			h.writeError(w, http.StatusConflict, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if err = response.JSON(w, http.StatusCreated, converters.ShipmentToDTO(created)); err != nil {
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
