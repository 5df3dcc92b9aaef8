package booking_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/converters"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/booking"
	"logistics/internal/service/pricing"
	"logistics/internal/service/serviceability"
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
	var bookingDTO dto.BookingRequest
	err := json.NewDecoder(r.Body).Decode(&bookingDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = h.validator.Struct(bookingDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	bookingRequest, err := converters.BookingRequestFromDTO(bookingDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.Book(r.Context(), bookingRequest)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrMissingRequiredFields),
			errors.Is(err, booking.ErrInvalidPartnerID),
			errors.Is(err, booking.ErrInvalidWeight),
			errors.Is(err, serviceability.ErrInvalidPincode),
			errors.Is(err, shipment.ErrMissingRequiredFields),
			errors.Is(err, entities.ErrUnknownValue):
			h.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, pricing.ErrPartnerNotFound):
			h.writeError(w, http.StatusNotFound, err)
		case errors.Is(err, booking.ErrRouteNotServiceable):
			h.writeError(w, http.StatusUnprocessableEntity, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	res := dto.BookingResponse{
		BookingId:      result.BookingID,
		TrackingNumber: result.TrackingNumber,
		AwbNumber:      result.AWBNumber,
		ShipmentId:     result.ShipmentID,
		TotalPrice:     result.TotalPrice,
		EstimatedDays:  result.EstimatedDays,
	}

	if err = response.JSON(w, http.StatusCreated, res); err != nil {
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
