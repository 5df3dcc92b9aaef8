package serviceabilities_get

import (
	"errors"
	"net/http"
	"strings"

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
	pincode := mux.Vars(r)["pincode"]

	partners, err := h.service.CheckAll(r.Context(), pincode)
	if err != nil {
		switch {
		case errors.Is(err, serviceability.ErrInvalidPincode):
			if err = response.Message(w, http.StatusBadRequest, err.Error()); err != nil {
				h.log.With(
					logger.NewField("error", err),
				).Error("encode JSON response")
			}
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	res := dto.PartnerServiceabilityList{
		Pincode:  strings.TrimSpace(pincode),
		Partners: make([]dto.PartnerServiceability, 0, len(partners)),
	}
	for _, p := range partners {
		res.Partners = append(res.Partners, dto.PartnerServiceability{
			PartnerId:     p.PartnerID,
			PartnerName:   p.PartnerName,
			PartnerCode:   p.PartnerCode,
			Serviceable:   p.Serviceable,
			CodAvailable:  p.CodAvailable,
			EstimatedDays: p.EstimatedDays,
		})
	}

	if err = response.JSON(w, http.StatusOK, res); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
