// Package server runs the tool surface over stdio: one JSON request per
// line in, one JSON response per line out. The orchestrator process owns the
// other end of the pipe.
package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	contractx "github.com/greennext/shopping-gateway/gateway/contract"
	toolx "github.com/greennext/shopping-gateway/gateway/tool"
)

const maxLineBytes = 1 << 20

type Server struct {
	exec toolx.Executor
	log  zerolog.Logger
}

func New(exec toolx.Executor) *Server {
	return &Server{
		exec: exec,
		log:  log.Logger,
	}
}

// Serve reads tool requests until EOF or context cancellation. Malformed
// lines produce an error response rather than terminating the loop; the
// stream stays usable for the next request.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req contractx.ToolRequest
		if err := json.Unmarshal(line, &req); err != nil {
			if err := encoder.Encode(contractx.ToolResult{Error: fmt.Sprintf("malformed request: %v", err)}); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
			continue
		}

		result, err := s.exec(ctx, req.Tool, req.Args)
		if err != nil {
			s.log.Error().Str("tool", req.Tool).Err(err).Msg("tool call failed")
			result = contractx.ToolResult{Tool: req.Tool, Error: err.Error()}
		}
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	return scanner.Err()
}
