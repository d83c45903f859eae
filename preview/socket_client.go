// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package preview

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/SoftbearStudios/soar/random"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 8) / 10

	// Builds are slow, so few replies should ever be waiting.
	socketBufferSize = 4

	// Maximum message size allowed from peer.
	maxMessageSize = 16384
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	HandshakeTimeout: time.Second,
	ReadBufferSize:   maxMessageSize,
	WriteBufferSize:  16384,
}

// SocketClient builds the recipes one connection sends, in order.
type SocketClient struct {
	server *Server
	conn   *websocket.Conn
	send   chan outbound
	once   sync.Once
	rng    *random.Generator
}

// Create a SocketClient from a connection
func NewSocketClient(server *Server, conn *websocket.Conn) *SocketClient {
	return &SocketClient{
		server: server,
		conn:   conn,
		send:   make(chan outbound, socketBufferSize),
		rng:    random.New(0),
	}
}

func (client *SocketClient) Init() {
	go client.writePump()
	go client.readPump()
}

func (client *SocketClient) Destroy() {
	client.once.Do(func() {
		_ = client.conn.Close()
	})
}

func (client *SocketClient) readPump() {
	defer func() {
		close(client.send)
		client.Destroy()
	}()
	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, r, err := client.conn.NextReader()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Println("close error:", err)
			}
			break
		}

		var in inboundJSON
		if err = json.NewDecoder(r).Decode(&in); err != nil {
			log.Println("unmarshal error:", err.Error())
			break
		}

		// Blocks while the writer is behind, which throttles reading.
		client.send <- client.server.handle(client.rng, in)
	}
}

func (client *SocketClient) writePump() {
	pingTicker := time.NewTicker(pingPeriod)

	defer func() {
		pingTicker.Stop()
		client.Destroy()

		// Unblock the reader and return what it still queued.
		for out := range client.send {
			out.Pool()
		}
	}()

	for {
		select {
		case out, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}

			err := client.write(out)
			out.Pool()
			if err != nil {
				log.Println("send error:", err)
				return
			}
		case <-pingTicker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (client *SocketClient) write(out outbound) error {
	w, err := client.conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return err
	}
	if err = json.NewEncoder(w).Encode(outboundJSON{Type: outboundType(out), Data: out}); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
