// Copyright (C) 2025 Dyne.org foundation
// designed, written and maintained by Denis Roio <jaromil@dyne.org>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package tools registers the Apple Mail tool surface with an MCP
// server. Every tool answers with a single text payload: the marshaled
// result object on success, or {"error": "..."} with the error flag
// set. Handlers never leak raw errors to the transport.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	apperrors "mailbridge/internal/errors"
	"mailbridge/internal/mail"
)

// handlerFunc is the shared shape of tool handlers: typed input in,
// result object or error out. The envelope wrapping happens in one
// place so no handler can bypass it.
type handlerFunc[In any] func(ctx context.Context, c *mail.Client, in In) (any, error)

// errorEnvelope is the error side of the response contract.
type errorEnvelope struct {
	Error string `json:"error"`
}

func renderEnvelope(v any, err error) (string, bool) {
	if err != nil {
		payload, _ := json.Marshal(errorEnvelope{Error: err.Error()})
		return string(payload), true
	}
	payload, merr := json.Marshal(v)
	if merr != nil {
		fallback, _ := json.Marshal(errorEnvelope{Error: merr.Error()})
		return string(fallback), true
	}
	return string(payload), false
}

func envelope(v any, err error) *mcp.CallToolResult {
	text, isErr := renderEnvelope(v, err)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isErr,
	}
}

// register wires a handler into the MCP server with the envelope
// contract applied.
func register[In any](srv *mcp.Server, c *mail.Client, tool *mcp.Tool, h handlerFunc[In]) {
	mcp.AddTool(srv, tool, func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		v, err := h(ctx, c, in)
		return envelope(v, err), nil, nil
	})
}

// RegisterAll registers every exposed tool on the server.
func RegisterAll(srv *mcp.Server, c *mail.Client) {
	registerListAccounts(srv, c)
	registerListMailboxes(srv, c)
	registerGetUnreadCount(srv, c)
	registerSearchEmails(srv, c)
	registerReadEmail(srv, c)
	registerMarkRead(srv, c)
	registerMarkUnread(srv, c)
	registerMarkFlagged(srv, c)
	registerMoveEmail(srv, c)
	registerTrashEmail(srv, c)
}

// console maps tool names to direct invokers for the interactive
// debugging mode; it shares the handlers with the MCP registration.
var console = map[string]func(ctx context.Context, c *mail.Client, raw []byte) string{
	"list_accounts":    consoleInvoker(handleListAccounts),
	"list_mailboxes":   consoleInvoker(handleListMailboxes),
	"get_unread_count": consoleInvoker(handleGetUnreadCount),
	"search_emails":    consoleInvoker(handleSearchEmails),
	"read_email":       consoleInvoker(handleReadEmail),
	"mark_read":        consoleInvoker(handleMarkRead),
	"mark_unread":      consoleInvoker(handleMarkUnread),
	"mark_flagged":     consoleInvoker(handleMarkFlagged),
	"move_email":       consoleInvoker(handleMoveEmail),
	"trash_email":      consoleInvoker(handleTrashEmail),
}

func consoleInvoker[In any](h handlerFunc[In]) func(ctx context.Context, c *mail.Client, raw []byte) string {
	return func(ctx context.Context, c *mail.Client, raw []byte) string {
		var in In
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &in); err != nil {
				text, _ := renderEnvelope(nil, apperrors.Wrap(apperrors.CodeInput, "invalid arguments", err))
				return text
			}
		}
		text, _ := renderEnvelope(h(ctx, c, in))
		return text
	}
}

// Names lists all tool names, sorted for completion.
func Names() []string {
	names := make([]string, 0, len(console))
	for name := range console {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs a tool by name with raw JSON arguments, returning the
// envelope text. Used by the interactive console, not the transport.
func Invoke(ctx context.Context, c *mail.Client, name string, raw []byte) (string, error) {
	invoke, ok := console[name]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", name)
	}
	return invoke(ctx, c, raw), nil
}

func boolPtr(b bool) *bool {
	return &b
}
