package quote_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/handlers/rest/converters"
	"logistics/internal/handlers/rest/response"
	"logistics/internal/service/pricing"
	"logistics/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	validator requestValidator
	service   Service
	distance  DistanceProvider
}

func New(log handlerLogger, validator requestValidator, service Service, distance DistanceProvider) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		validator: validator,
		service:   service,
		distance:  distance,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var quoteDTO dto.QuoteRequest
	err := json.NewDecoder(r.Body).Decode(&quoteDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = h.validator.Struct(quoteDTO); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	quoteRequest, err := converters.QuoteRequestFromDTO(quoteDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	// расстояние по пинкодам, только если не передано явно
	if quoteRequest.Distance == nil && quoteDTO.PickupPincode != nil && quoteDTO.DeliveryPincode != nil {
		distance := h.distance.Distance(*quoteDTO.PickupPincode, *quoteDTO.DeliveryPincode)
		quoteRequest.Distance = &distance
	}

	var quotes []entities.PriceBreakdown
	if quoteDTO.CourierPartnerId != nil {
		var breakdown *entities.PriceBreakdown
		breakdown, err = h.service.Quote(r.Context(), quoteRequest, *quoteDTO.CourierPartnerId)
		if breakdown != nil {
			quotes = []entities.PriceBreakdown{*breakdown}
		}
	} else {
		quotes, err = h.service.QuoteAll(r.Context(), quoteRequest)
	}
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrInvalidPartnerID):
			h.writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, pricing.ErrPartnerNotFound):
			h.writeError(w, http.StatusNotFound, err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	res := dto.QuoteResponse{
		Quotes: make([]dto.PriceBreakdown, 0, len(quotes)),
	}
	for i := range quotes {
		res.Quotes = append(res.Quotes, converters.PriceBreakdownToDTO(&quotes[i]))
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
