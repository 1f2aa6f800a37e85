package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Output is where log events are written; stdout carries command results.
var Output io.Writer = os.Stderr

// InitLogger initializes the zerolog logger with the specified debug mode and output format.
func InitLogger(debug, human bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano              // always initialize base logger with timestamp.
	base := zerolog.New(Output).With().Timestamp().Logger() // initialize base logger.
	if human {
		log.Logger = base.Output(zerolog.ConsoleWriter{
			Out:        Output,
			TimeFormat: time.RFC3339Nano,
		}) // select output format.
	} else {
		log.Logger = base // use JSON logger.
	}
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel) // set debug level.
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel) // set info level.
	}
}

// LogRequest logs a received lookup request with structured fields.
func LogRequest(
	requestID string,
	clientIP string,
	command string,
	request string,
	activeConns int,
) {
	log.Info().
		Str("event", "request_received").
		Str("request_id", requestID).
		Str("client_ip", clientIP).
		Str("command", command).
		Str("request", request).
		Int("active_connections", activeConns).
		Msg("received command")
}

// LogResponse logs a sent response with structured fields.
func LogResponse(
	requestID string,
	clientIP string,
	command string,
	responseCommand string,
	errorCode string,
	activeConns int,
) {
	log.Info().
		Str("event", "response_sent").
		Str("request_id", requestID).
		Str("client_ip", clientIP).
		Str("command", command).
		Str("response_command", responseCommand).
		Str("error_code", errorCode).
		Int("active_connections", activeConns).
		Msg("sent response")
}

// LogBatch logs the outcome of a CSV batch run.
func LogBatch(runID, fileIn, fileOut string, rows int, elapsed time.Duration) {
	log.Info().
		Str("event", "batch_done").
		Str("run_id", runID).
		Str("file_in", fileIn).
		Str("file_out", fileOut).
		Int("rows", rows).
		Dur("elapsed", elapsed).
		Msg("batch processed")
}
