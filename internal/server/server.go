package server

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	anetserver "github.com/andrei-cloud/anet/server"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/andrei-cloud/dhcp_o82/internal/cli"
	"github.com/andrei-cloud/dhcp_o82/internal/errorcodes"
	"github.com/andrei-cloud/dhcp_o82/internal/logging"
	"github.com/andrei-cloud/dhcp_o82/internal/message"
	"github.com/andrei-cloud/dhcp_o82/pkg/option82"
)

// logAdapter implements anet.Logger using zerolog.
type logAdapter struct{}

// Server wraps the anet TCP server and answers option 82 lookups.
type Server struct {
	address     string
	srv         *anetserver.Server
	activeConns int32
}

func (l logAdapter) Print(v ...any) {
	log.Info().Msg(fmt.Sprint(v...))
}

func (l logAdapter) Printf(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func (l logAdapter) Infof(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func (l logAdapter) Warnf(format string, v ...any) {
	log.Warn().Msgf(format, v...)
}

func (l logAdapter) Errorf(format string, v ...any) {
	log.Error().Msgf(format, v...)
}

// NewServer configures and returns the lookup server instance.
func NewServer(address string) (*Server, error) {
	cfg := &anetserver.ServerConfig{
		MaxConns:        100,
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     0 * time.Second, // disable idle connection closure.
		ShutdownTimeout: 5 * time.Second,
		Logger:          logAdapter{},
	}

	s := &Server{address: address}
	handler := anetserver.HandlerFunc(s.handle)
	srv, err := anetserver.NewServer(address, handler, cfg)
	if err != nil {
		return nil, fmt.Errorf("server setup failed: %w", err)
	}
	s.srv = srv

	return s, nil
}

// Start begins listening for connections.
func (s *Server) Start() error {
	log.Info().Str("address", s.address).Msg("server started")
	return s.srv.Start()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	return s.srv.Stop()
}

// formatData returns ascii string if all bytes are printable, else hex string.
func formatData(data []byte) string {
	for _, b := range data {
		if (b < 32 || b > 126) && b != '\n' {
			return fmt.Sprintf("%x", data)
		}
	}

	return string(data)
}

// incrementCode returns the response command code by incrementing the second character.
func incrementCode(cmd string) string {
	b := []byte(cmd)
	if len(b) < 2 {
		return cmd
	}
	if b[1] == 'Z' {
		b[1] = 'A'
	} else {
		b[1]++
	}

	return string(b)
}

// Execute runs a single request and returns the response body or an error
// that maps to a response code.
func Execute(cmd string, payload []byte) ([]byte, error) {
	switch cmd {
	case message.CodeInspect:
		m := message.NewIN(payload)
		traceMessage(m)
		c, err := option82.Parse(string(m.Get(message.FieldHex)))
		if err != nil {
			return nil, err
		}

		return []byte(c.String()), nil
	case message.CodeCreate:
		m, err := message.NewCR(payload)
		if err != nil {
			return nil, err
		}
		traceMessage(m)
		h, err := cli.EncodeHex(
			string(m.Get(message.FieldCircuitID)),
			string(m.Get(message.FieldRemoteID)),
			string(m.Get(message.FieldSubscriberID)),
		)
		if err != nil {
			return nil, err
		}

		return []byte(h), nil
	default:
		return nil, errorcodes.Err68
	}
}

func traceMessage(m message.Message) {
	log.Debug().
		Str("event", "request_trace").
		Str("command", m.CommandCode()).
		Msg(m.Trace())
}

func (s *Server) handle(conn *anetserver.ServerConn, data []byte) ([]byte, error) {
	client := conn.Conn.RemoteAddr().String()
	atomic.AddInt32(&s.activeConns, 1)
	defer atomic.AddInt32(&s.activeConns, -1)

	requestID := uuid.NewString()
	start := time.Now()

	if len(data) < 2 {
		log.Error().Str("request_id", requestID).Str("client_ip", client).Msg("malformed request")
		return nil, errors.New("malformed request")
	}

	cmd := string(data[:2])
	payload := data[2:]
	logging.LogRequest(
		requestID,
		client,
		cmd,
		formatData(payload),
		int(atomic.LoadInt32(&s.activeConns)),
	)

	body, execErr := Execute(cmd, payload)
	code := errorcodes.FromError(execErr)
	if execErr != nil {
		log.Warn().
			Str("event", "command_error").
			Str("request_id", requestID).
			Str("client_ip", client).
			Str("command", cmd).
			Str("error_code", code.CodeOnly()).
			Err(execErr).
			Msg("command failed")
	}

	respCmd := incrementCode(cmd)
	var resp strings.Builder
	resp.WriteString(respCmd)
	resp.WriteString(code.CodeOnly())
	resp.Write(body)

	logging.LogResponse(
		requestID,
		client,
		cmd,
		respCmd,
		code.CodeOnly(),
		int(atomic.LoadInt32(&s.activeConns)),
	)
	log.Debug().
		Str("event", "handle_done").
		Str("request_id", requestID).
		Str("duration", time.Since(start).String()).
		Msg("completed request handling")

	return []byte(resp.String()), nil
}
