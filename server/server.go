package server

import (
	"net/http"

	"heatroom/config"
	"heatroom/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	cfg      config.Config
	upgrader websocket.Upgrader
}

func NewServer(cfg config.Config, upgrader websocket.Upgrader) *Server {
	return &Server{
		cfg:      cfg,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer conn.Close()

	hub := NewHub(s.cfg)
	hub.conn = conn
	defer hub.close()
	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("read: ", err)
			}
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Addr).Info("listening")
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}
