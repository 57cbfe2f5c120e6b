package status

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mogaika/material_fixer/migrate"
)

const (
	INFO = iota
	ERROR
	PROGRESS
)

type Message struct {
	Message  string          `json:"message"`
	Time     time.Time       `json:"time"`
	Type     int             `json:"type"`
	Progress float32         `json:"progress"`
	Result   *migrate.Result `json:"result,omitempty"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func (c *client) writePump() {
	ticker := time.NewTicker(time.Second * 30)
	defer func() {
		ticker.Stop()
		unregisterClient(c)
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(40 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("[status] ws write msg error: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(40 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[status] ws write ping error: %v", err)
				return
			}
		}
	}
}

// readPump drains the connection so close and pong frames are handled.
func (c *client) readPump() {
	defer c.conn.Close()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// NewClient starts streaming status messages to conn, beginning with the
// last one sent.
func NewClient(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, 32)}
	globalLock.Lock()
	broadcastList[c] = true
	if lastMessage != nil {
		c.send <- lastMessage
	}
	globalLock.Unlock()
	go c.writePump()
	go c.readPump()
}

var statusBroadcast chan *Message
var broadcastList map[*client]bool
var globalLock sync.Mutex
var lastMessage []byte
var last *Message

func unregisterClient(c *client) {
	globalLock.Lock()
	defer globalLock.Unlock()
	delete(broadcastList, c)
}

func init() {
	statusBroadcast = make(chan *Message, 16)
	broadcastList = make(map[*client]bool)
	go func() {
		for s := range statusBroadcast {
			data, err := json.Marshal(s)
			if err != nil {
				log.Printf("[status] marshal error: %v", err)
				continue
			}
			globalLock.Lock()
			lastMessage = data
			last = s
			for c := range broadcastList {
				select {
				case c.send <- data:
				default:
					// slow client, drop it
					delete(broadcastList, c)
					close(c.send)
				}
			}
			globalLock.Unlock()
		}
	}()
}

// Last returns the most recently broadcast message, nil before the first one.
func Last() *Message {
	globalLock.Lock()
	defer globalLock.Unlock()
	return last
}

func publish(m *Message) {
	if math.IsNaN(float64(m.Progress)) || math.IsInf(float64(m.Progress), 0) {
		m.Progress = 0
	}
	m.Time = time.Now()
	statusBroadcast <- m
}

func Status(msg string, _type int, progress float32) {
	publish(&Message{Message: msg, Type: _type, Progress: progress})
}

func Info(format string, a ...interface{}) {
	Status(fmt.Sprintf(format, a...), INFO, 0.0)
}

func Error(format string, a ...interface{}) {
	Status(fmt.Sprintf(format, a...), ERROR, 0.0)
}

func Progress(progress float32, format string, a ...interface{}) {
	Status(fmt.Sprintf(format, a...), PROGRESS, progress)
}

// Reporter forwards batch results of a migrate.Engine to status clients.
type Reporter struct{}

func (Reporter) Report(res migrate.Result) {
	m := &Message{Message: res.String(), Type: INFO, Result: &res}
	if res.Disabled {
		m.Type = ERROR
	}
	publish(m)
}
