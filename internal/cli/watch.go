package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var useWebSocket bool

	cmd := &cobra.Command{
		Use:   "watch <id>",
		Short: "Stream live changes to a board",
		Long: `Connect to the board's event stream and print changes as they happen.

Events:
  - board: current board state on connect
  - board-updated: tiles were put or the end of game was checked
  - round-finished: the round was scored
  - game-finished: the final bonus was applied
  - board-deleted: the board was removed; the stream ends

Press Ctrl+C to disconnect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if useWebSocket {
				return streamWebSocket(ctx, cmd.OutOrStdout(), args[0])
			}
			return streamEvents(ctx, cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().BoolVar(&useWebSocket, "websocket", false, "Use the websocket stream instead of server-sent events")
	return cmd
}

// SSEEvent represents a parsed SSE event
type SSEEvent struct {
	Time  time.Time       `json:"time"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func streamEvents(ctx context.Context, w io.Writer, id string) error {
	url := strings.TrimSuffix(cfg.ServerURL, "/") + boardPath(id, "/events")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	// No timeout for SSE
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Error.Code != "" {
			return fmt.Errorf("%s", errResp.Error.String())
		}
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	jsonOutput := cfg.Output == "json"
	if !jsonOutput {
		_, _ = fmt.Fprintf(w, "Watching board %s\n", id)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var currentEvent string
	var dataLines []string

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "event: "):
			currentEvent = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			dataLines = append(dataLines, strings.TrimPrefix(line, "data: "))
		case line == "":
			if currentEvent != "" && currentEvent != "connected" {
				printEvent(w, currentEvent, strings.Join(dataLines, "\n"), jsonOutput)
			}
			currentEvent = ""
			dataLines = nil
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stream error: %w", err)
	}

	if !jsonOutput {
		_, _ = fmt.Fprintln(w, "Disconnected")
	}
	return nil
}

func streamWebSocket(ctx context.Context, w io.Writer, id string) error {
	url := strings.TrimSuffix(cfg.ServerURL, "/") + boardPath(id, "/ws")
	url = "ws" + strings.TrimPrefix(url, "http")

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil {
			defer func() { _ = resp.Body.Close() }()
			body, _ := io.ReadAll(resp.Body)
			var errResp ErrorResponse
			if json.Unmarshal(body, &errResp) == nil && errResp.Error.Code != "" {
				return fmt.Errorf("%s", errResp.Error.String())
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// Unblock ReadJSON on Ctrl+C
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	jsonOutput := cfg.Output == "json"
	if !jsonOutput {
		_, _ = fmt.Fprintf(w, "Watching board %s\n", id)
	}

	for {
		var frame struct {
			Event string          `json:"event"`
			Data  json.RawMessage `json:"data"`
		}
		if err := conn.ReadJSON(&frame); err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return fmt.Errorf("stream error: %w", err)
			}
			break
		}
		if frame.Event != "connected" {
			printEvent(w, frame.Event, string(frame.Data), jsonOutput)
		}
	}

	if !jsonOutput {
		_, _ = fmt.Fprintln(w, "Disconnected")
	}
	return nil
}

// summary picks the headline fields out of an event payload for text output
type summary struct {
	ID     string `json:"id"`
	Round  int    `json:"round"`
	Points *int   `json:"points"`
	Board  *struct {
		Round  int `json:"round"`
		Points int `json:"points"`
	} `json:"board"`
	Score *struct {
		Penalty int    `json:"penalty"`
		Result  string `json:"result"`
	} `json:"score"`
}

func printEvent(w io.Writer, event, data string, jsonOutput bool) {
	now := time.Now()

	if jsonOutput {
		raw := json.RawMessage(data)
		if !json.Valid(raw) {
			raw, _ = json.Marshal(data)
		}
		line, _ := json.Marshal(SSEEvent{Time: now, Event: event, Data: raw})
		_, _ = fmt.Fprintln(w, string(line))
		return
	}

	var s summary
	_ = json.Unmarshal([]byte(data), &s)

	var detail string
	switch {
	case s.Score != nil && s.Board != nil:
		detail = fmt.Sprintf("round %d scored, floor %d, %d points (%s)", s.Board.Round, s.Score.Penalty, s.Board.Points, s.Score.Result)
	case event == "board-deleted":
		detail = s.ID
	case s.Points != nil && s.ID != "":
		detail = fmt.Sprintf("%s round %d, %d points", s.ID, s.Round, *s.Points)
	case s.Points != nil:
		detail = fmt.Sprintf("%d points", *s.Points)
	default:
		detail = data
	}

	_, _ = fmt.Fprintf(w, "[%s] %s: %s\n", now.Format("2006-01-02 15:04:05"), event, detail)
}
