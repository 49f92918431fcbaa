package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"PanganPulse/internal/dataset"
	"PanganPulse/internal/domain/models"
	domrepo "PanganPulse/internal/domain/repository"
	"PanganPulse/pkg/logger"
	"PanganPulse/pkg/util"
)

// KafkaPricesHandler consumes price observations and writes them to storage.
type KafkaPricesHandler struct {
	topic       string
	store       domrepo.PriceStore
	broadcaster domrepo.PriceBroadcaster
	metrics     domrepo.Metrics
	log         *logger.Logger
}

func NewKafkaPricesHandler(
	topic string,
	store domrepo.PriceStore,
	broadcaster domrepo.PriceBroadcaster,
	metrics domrepo.Metrics,
	log *logger.Logger,
) *KafkaPricesHandler {
	return &KafkaPricesHandler{
		topic:       topic,
		store:       store,
		broadcaster: broadcaster,
		metrics:     metrics,
		log:         log,
	}
}

func (h *KafkaPricesHandler) Topic() string { return h.topic }

// incoming message schema: {tanggal, komoditas, pasar, harga}
func (h *KafkaPricesHandler) Handle(ctx context.Context, b []byte) error {
	var m struct {
		Date      string  `json:"tanggal"`
		Commodity string  `json:"komoditas"`
		Market    string  `json:"pasar"`
		Price     float64 `json:"harga"`
	}
	if err := json.Unmarshal(b, &m); err != nil {
		// malformed payloads are dropped, retrying cannot fix them
		h.metrics.RecordError("kafka_decode")
		h.log.Warn("dropping malformed price message", logger.Error(err))
		return nil
	}

	date, ok := util.ParseDate(m.Date)
	if !ok {
		h.metrics.RecordError("kafka_decode")
		h.log.Warn("dropping price message with bad date", logger.String("tanggal", m.Date))
		return nil
	}
	if m.Price <= 0 {
		h.metrics.RecordError("kafka_decode")
		h.log.Warn("dropping price message with non-positive price",
			logger.Float64("harga", m.Price))
		return nil
	}

	rec := models.PriceRecord{
		Date:      date,
		Commodity: dataset.CanonicalCommodity(m.Commodity),
		Market:    dataset.CanonicalMarket(m.Market),
		Price:     m.Price,
	}

	if err := h.store.Store(ctx, rec); err != nil {
		h.metrics.RecordError("kafka_store")
		return fmt.Errorf("store price %s/%s: %w", rec.Market, rec.Commodity, err)
	}

	h.metrics.RecordStored(rec.Market, 1)
	h.metrics.RecordLastPrice(rec.Market, rec.Commodity, rec.Price)
	if h.broadcaster != nil {
		h.broadcaster.Broadcast(rec)
	}
	return nil
}
