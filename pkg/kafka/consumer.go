package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageHandler handles messages from a specific topic.
type MessageHandler interface {
	Topic() string
	Handle(context.Context, []byte) error
}

// Consumer wraps a Kafka group reader with a worker pool. Failed messages
// are retried with linear backoff up to RetryMax, then skipped.
type Consumer struct {
	cfg      *ConsumerConfig
	reader   *kafka.Reader
	handler  MessageHandler
	msgChan  chan []byte
	stopOnce sync.Once
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewConsumer creates a new Kafka consumer.
func NewConsumer(opts ...ConsumerOption) (*Consumer, error) {
	cfg := &ConsumerConfig{
		GroupID:     "default",
		WorkerCount: 1,
		BufferSize:  100,
		RetryMax:    3,
		BackoffMin:  50 * time.Millisecond,
		BackoffMax:  2 * time.Second,
		MinBytes:    1,
		MaxBytes:    10e6, // 10MB
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("brokers are required")
	}

	return &Consumer{
		cfg:     cfg,
		msgChan: make(chan []byte, cfg.BufferSize),
	}, nil
}

// RegisterHandler attaches the message handler for its topic.
func (c *Consumer) RegisterHandler(h MessageHandler) {
	c.handler = h
}

// Start begins consuming. Blocks until Stop is called or the reader fails.
func (c *Consumer) Start() error {
	if c.handler == nil {
		return fmt.Errorf("no handler registered")
	}

	c.reader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:  c.cfg.Brokers,
		GroupID:  c.cfg.GroupID,
		Topic:    c.handler.Topic(),
		MinBytes: c.cfg.MinBytes,
		MaxBytes: c.cfg.MaxBytes,
	})

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	for i := 0; i < c.cfg.WorkerCount; i++ {
		c.wg.Add(1)
		go c.worker(ctx)
	}

	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			close(c.msgChan)
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("kafka read: %w", err)
		}

		select {
		case c.msgChan <- m.Value:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Consumer) worker(ctx context.Context) {
	defer c.wg.Done()

	for data := range c.msgChan {
		c.handleWithRetry(ctx, data)
	}
}

func (c *Consumer) handleWithRetry(ctx context.Context, data []byte) {
	var err error
	for attempt := 0; attempt <= c.cfg.RetryMax; attempt++ {
		if attempt > 0 {
			backoff := c.cfg.BackoffMin * time.Duration(attempt)
			if backoff > c.cfg.BackoffMax {
				backoff = c.cfg.BackoffMax
			}
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return
			}
		}
		if err = c.handler.Handle(ctx, data); err == nil {
			return
		}
	}
	log.Printf("kafka consumer: dropping message after %d attempts: %v", c.cfg.RetryMax+1, err)
}

// Stop shuts down the consumer and waits for workers to drain.
func (c *Consumer) Stop(ctx context.Context) error {
	var err error
	c.stopOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
		if c.reader != nil {
			err = c.reader.Close()
		}

		done := make(chan struct{})
		go func() {
			c.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			err = ctx.Err()
		}
	})
	return err
}
