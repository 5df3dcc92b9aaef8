package tracking_event_received

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"logistics/internal/entities"
	shipmentservice "logistics/internal/service/shipment"
	"logistics/pkg/logger"
)

type Handler struct {
	shipmentService          Service
	dedup                    Deduplicator
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, shipmentService Service, dedup Deduplicator, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		shipmentService:          shipmentService,
		dedup:                    dedup,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("tracking.event: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("tracking.event: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// true означает выход из ConsumeClaim без подтверждения сообщения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event trackingEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("tracking.event handler received bad message")
		EventsTotal.WithLabelValues("malformed").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event", event.EventID),
		logger.NewField("tracking_number", event.TrackingNumber),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	if event.EventID == "" || event.TrackingNumber == "" {
		msgLog.Warn("tracking.event handler received event without id or tracking number")
		EventsTotal.WithLabelValues("malformed").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	status, err := entities.ParseShipmentStatus(event.Status)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("tracking.event handler unknown status")
		EventsTotal.WithLabelValues("unknown_status").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	processed, err := h.dedup.IsProcessed(ctx, event.EventID)
	switch {
	case err != nil && isContextErr(err):
		msgLog.With(
			logger.NewField("error", err),
		).Warn("tracking.event handler context cancelled, message will be reprocessed")
		return true
	case err != nil:
		// без кэша обрабатываем как новое, повтор даст лишнюю строку истории
		msgLog.With(
			logger.NewField("error", err),
		).Warn("tracking.event dedup lookup failed")
	case processed:
		msgLog.Info("tracking.event: duplicate skipped")
		EventsTotal.WithLabelValues("duplicate").Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("tracking.event processing")

	update := entities.TrackingUpdate{
		Status:      status,
		Location:    event.Location,
		Description: event.Description,
		UpdatedBy:   event.UpdatedBy,
	}

	shipment, err := h.shipmentService.UpdateStatusByTrackingNumber(ctx, event.TrackingNumber, update)
	if err != nil {
		switch {
		case isContextErr(err):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.event handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.event handler shipment not found")
			EventsTotal.WithLabelValues("not_found").Inc()

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("tracking.event handler failed to update shipment")
			EventsTotal.WithLabelValues("failed").Inc()
		}
		sess.MarkMessage(message, "")
		return false
	}

	// отмечаем только после успешной записи
	err = h.dedup.MarkProcessed(ctx, event.EventID)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("tracking.event failed to remember event id")
	}

	h.log.With(
		logger.NewField("event", event.EventID),
		logger.NewField("shipment", shipment.ID),
		logger.NewField("current_status", shipment.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("tracking.event: processed")
	EventsTotal.WithLabelValues("applied").Inc()

	sess.MarkMessage(message, "")
	return false
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
