package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Binance streams live trades from the Binance spot WebSocket API,
// reconnecting with backoff when the connection drops.
type Binance struct {
	URL    string // e.g. "wss://stream.binance.com:9443/ws"
	Symbol string // e.g. "btcusdt"
	Log    *logrus.Entry
}

func (b *Binance) Name() string { return "binance" }

type binanceTrade struct {
	Event string `json:"e"`
	Time  int64  `json:"T"`
	Price string `json:"p"`
	Qty   string `json:"q"`
}

// Stream connects and returns the tick channel. The channel closes when ctx
// is cancelled; transient connection errors are retried internally.
func (b *Binance) Stream(ctx context.Context) (<-chan Tick, error) {
	if b.URL == "" || b.Symbol == "" {
		return nil, fmt.Errorf("binance feed: url and symbol are required")
	}
	ch := make(chan Tick, 64)
	go b.run(ctx, ch)
	return ch, nil
}

func (b *Binance) run(ctx context.Context, ch chan<- Tick) {
	defer close(ch)
	log := b.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("feed", "binance")

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, b.streamURL(), nil)
		if err != nil {
			log.WithError(err).Warn("dial failed, retrying")
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second
		log.WithField("symbol", b.Symbol).Info("connected")

		if err := b.read(ctx, conn, ch, log); err != nil {
			log.WithError(err).Warn("stream interrupted, reconnecting")
		}
		conn.Close()
	}
}

func (b *Binance) read(ctx context.Context, conn *websocket.Conn, ch chan<- Tick, log *logrus.Entry) error {
	const readTimeout = 30 * time.Second

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readTimeout))
	})

	pingCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		ticker := time.NewTicker(readTimeout / 3)
		defer ticker.Stop()
		for {
			select {
			case <-pingCtx.Done():
				return
			case <-ticker.C:
				conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second))
			}
		}
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var tr binanceTrade
		if err := json.Unmarshal(data, &tr); err != nil || tr.Event != "trade" {
			continue
		}
		price, err := strconv.ParseFloat(tr.Price, 64)
		if err != nil {
			continue
		}
		qty, _ := strconv.ParseFloat(tr.Qty, 64)
		select {
		case ch <- Tick{Time: tr.Time, Price: price, Qty: qty}:
		default:
			log.Debug("tick buffer full, dropping")
		}
	}
}

func (b *Binance) streamURL() string {
	return strings.TrimRight(b.URL, "/") + "/" + strings.ToLower(b.Symbol) + "@trade"
}
