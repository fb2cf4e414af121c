package kafka

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const LibraryTopic = "library.events"

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
	Topic string   `envconfig:"KAFKA_TOPIC" default:"library.events"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

type EventType string

const (
	EventBookCreated  EventType = "BOOK_CREATED"
	EventBookUpdated  EventType = "BOOK_UPDATED"
	EventBookDeleted  EventType = "BOOK_DELETED"
	EventBookBorrowed EventType = "BOOK_BORROWED"
)

type Event struct {
	Timestamp time.Time `json:"timestamp"`
	EventType EventType `json:"eventType"`
	BookID    string    `json:"bookId"`
	ISBN      string    `json:"isbn,omitempty"`
	Copies    int       `json:"copies"`
	Quantity  int       `json:"quantity,omitempty"`
	BorrowID  string    `json:"borrowId,omitempty"`
}

type EventLog interface {
	Log(e Event) error
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Successes = false
	defaultCfg.Producer.Return.Errors = true

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

type eventLog struct {
	producer sarama.AsyncProducer
	topic    string
}

// NewEventLog publishes events to topic and logs delivery errors until the producer is closed.
func NewEventLog(producer sarama.AsyncProducer, topic string, log *zap.Logger) EventLog {
	log = log.Named("events")
	go func() {
		for perr := range producer.Errors() {
			log.Warn("deliver event", zap.String("topic", perr.Msg.Topic), zap.Error(perr.Err))
		}
	}()
	return &eventLog{
		producer: producer,
		topic:    topic,
	}
}

func (l *eventLog) Log(e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: l.topic,
		Key:   sarama.StringEncoder(e.BookID),
		Value: sarama.ByteEncoder(data),
	}
	l.producer.Input() <- msg
	return nil
}

type nopLog struct{}

func NewNopEventLog() EventLog { return nopLog{} }

func (nopLog) Log(Event) error { return nil }
