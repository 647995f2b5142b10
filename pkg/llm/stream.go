package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// sseEvent is the union payload of the messages streaming events.
type sseEvent struct {
	Type  string `json:"type"`
	Index int    `json:"index"`

	Message *struct {
		ID    string `json:"id"`
		Role  string `json:"role"`
		Usage Usage  `json:"usage"`
	} `json:"message"`

	ContentBlock *struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Name string `json:"name"`
		Text string `json:"text"`
	} `json:"content_block"`

	Delta *struct {
		Type        string `json:"type"`
		Text        string `json:"text"`
		PartialJSON string `json:"partial_json"`
		StopReason  string `json:"stop_reason"`
	} `json:"delta"`

	Usage *Usage `json:"usage"`

	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// StreamMessage performs one streaming messages call. Text fragments are
// passed to onDelta as they arrive; tool_use input JSON fragments are
// accumulated until their block completes. The fully materialized response
// (same shape as CreateMessage) is returned when the stream ends.
//
// onDelta may be nil for callers that only want the final response.
func (c *Client) StreamMessage(ctx context.Context, system string, messages []Message, tools []Tool, onDelta func(text string)) (*Response, error) {
	req := Request{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages:  messages,
		Tools:     tools,
		Stream:    true,
	}

	httpResp, err := c.post(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		return nil, parseAPIError(httpResp)
	}

	return c.consumeStream(ctx, httpResp, onDelta)
}

func (c *Client) consumeStream(ctx context.Context, httpResp *http.Response, onDelta func(string)) (*Response, error) {
	resp := &Response{Role: RoleAssistant}

	var (
		currentText strings.Builder
		currentTool *ContentBlock
		currentJSON strings.Builder
		inTextBlock bool
	)

	flushBlock := func() error {
		if inTextBlock {
			resp.Content = append(resp.Content, ContentBlock{Type: BlockText, Text: currentText.String()})
			currentText.Reset()
			inTextBlock = false
		}
		if currentTool != nil {
			input := map[string]any{}
			if raw := currentJSON.String(); raw != "" {
				if err := json.Unmarshal([]byte(raw), &input); err != nil {
					return fmt.Errorf("decode tool input for %q: %w", currentTool.Name, err)
				}
			}
			currentTool.Input = input
			resp.Content = append(resp.Content, *currentTool)
			currentTool = nil
			currentJSON.Reset()
		}
		return nil
	}

	scanner := bufio.NewScanner(httpResp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := scanner.Text()
		// Event-type lines are redundant; every data payload carries "type".
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var event sseEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
			continue
		}

		switch event.Type {
		case "message_start":
			if event.Message != nil {
				resp.ID = event.Message.ID
				resp.Usage.InputTokens = event.Message.Usage.InputTokens
			}

		case "content_block_start":
			if event.ContentBlock == nil {
				continue
			}
			switch event.ContentBlock.Type {
			case BlockText:
				inTextBlock = true
				currentText.WriteString(event.ContentBlock.Text)
			case BlockToolUse:
				currentTool = &ContentBlock{
					Type: BlockToolUse,
					ID:   event.ContentBlock.ID,
					Name: event.ContentBlock.Name,
				}
				currentJSON.Reset()
			}

		case "content_block_delta":
			if event.Delta == nil {
				continue
			}
			switch event.Delta.Type {
			case "text_delta":
				currentText.WriteString(event.Delta.Text)
				if onDelta != nil && event.Delta.Text != "" {
					onDelta(event.Delta.Text)
				}
			case "input_json_delta":
				currentJSON.WriteString(event.Delta.PartialJSON)
			}

		case "content_block_stop":
			if err := flushBlock(); err != nil {
				return nil, err
			}

		case "message_delta":
			if event.Delta != nil && event.Delta.StopReason != "" {
				resp.StopReason = event.Delta.StopReason
			}
			if event.Usage != nil {
				resp.Usage.OutputTokens = event.Usage.OutputTokens
			}

		case "error":
			if event.Error != nil {
				return nil, &APIError{
					StatusCode: httpResp.StatusCode,
					Type:       event.Error.Type,
					Message:    event.Error.Message,
				}
			}

		case "message_stop":
			if err := flushBlock(); err != nil {
				return nil, err
			}
			return resp, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read messages stream: %w", err)
	}

	// Stream ended without message_stop; return what accumulated.
	if err := flushBlock(); err != nil {
		return nil, err
	}
	return resp, nil
}
