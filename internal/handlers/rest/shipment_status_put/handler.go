package shipment_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updateDTO dto.ShipmentStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = h.validator.Struct(updateDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	update, err := converters.TrackingUpdateFromDTO(updateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), id, update)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			h.writeError(w, http.StatusNotFound, err)
		case errors.Is(err, shipment.ErrInvalidShipmentID):
			h.writeError(w, http.StatusBadRequest, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if err = response.JSON(w, http.StatusOK, converters.ShipmentToDTO(updated)); err != nil {
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
