package server

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport/base"
	srvbase "github.com/viant/jsonrpc/transport/server/base"
)

const stdioSessionID = "stdio"

type stdioServer struct {
	stdin  io.Reader
	stdout io.Writer
}

// StdioServer serves one session over newline-delimited JSON-RPC. Requests run
// concurrently so that a notifications/cancelled line is read while a tool call is in flight.
type StdioServer struct {
	ctx     context.Context
	handler *srvbase.Handler
	session *srvbase.Session
	reader  *bufio.Reader
	pending sync.WaitGroup
}

// Stdio returns a stdio server reading stdin and writing stdout unless WithStdio overrides them.
func (s *Server) Stdio(ctx context.Context) *StdioServer {
	if ctx == nil {
		ctx = context.Background()
	}
	var reader io.Reader = os.Stdin
	if s.stdin != nil {
		reader = s.stdin
	}
	var writer io.Writer = os.Stdout
	if s.stdout != nil {
		writer = s.stdout
	}
	handler := srvbase.NewHandler()
	session := srvbase.NewSession(ctx, stdioSessionID, writer, s.NewHandler, srvbase.WithFramer(frameLine))
	handler.Sessions.Put(stdioSessionID, session)
	return &StdioServer{
		ctx:     context.WithValue(ctx, jsonrpc.SessionKey, session),
		handler: handler,
		session: session,
		reader:  bufio.NewReader(reader),
	}
}

// ListenAndServe serves until the input ends or the context is done, then waits
// for in-flight requests to write their responses.
func (s *StdioServer) ListenAndServe() error {
	defer s.pending.Wait()
	lines := make(chan []byte)
	failed := make(chan error, 1)
	go s.read(lines, failed)
	for {
		select {
		case <-s.ctx.Done():
			return s.ctx.Err()
		case err := <-failed:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case line := <-lines:
			s.dispatch(line)
		}
	}
}

func (s *StdioServer) read(lines chan<- []byte, failed chan<- error) {
	for {
		line, err := s.reader.ReadBytes('\n')
		if len(bytes.TrimSpace(line)) > 0 {
			select {
			case lines <- line:
			case <-s.ctx.Done():
				return
			}
		}
		if err != nil {
			failed <- err
			return
		}
	}
}

func (s *StdioServer) dispatch(line []byte) {
	if base.MessageType(line) != jsonrpc.MessageTypeRequest {
		s.handler.HandleMessage(s.ctx, s.session, line, nil)
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.handler.HandleMessage(s.ctx, s.session, line, nil)
	}()
}

func frameLine(data []byte) []byte {
	if bytes.HasSuffix(data, []byte{'\n'}) {
		return data
	}
	return append(data, '\n')
}
