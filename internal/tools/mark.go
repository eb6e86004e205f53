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

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"mailbridge/internal/mail"
)

// MarkInput defines input parameters for the mark_read and mark_unread
// tools. Each id is resolved independently; the first id that cannot
// be resolved or mutated aborts the whole batch with an error
// envelope, without partial results.
type MarkInput struct {
	MessageIDs []string `json:"message_ids" jsonschema:"Message ids to update"`
	Account    string   `json:"account,omitempty" jsonschema:"Account hint applied to every id"`
	Mailbox    string   `json:"mailbox,omitempty" jsonschema:"Mailbox hint applied to every id"`
}

// MarkFlaggedInput defines input parameters for the mark_flagged tool.
type MarkFlaggedInput struct {
	MessageIDs []string `json:"message_ids" jsonschema:"Message ids to update"`
	Flagged    bool     `json:"flagged" jsonschema:"Flag state to set: true to flag, false to unflag"`
	Account    string   `json:"account,omitempty" jsonschema:"Account hint applied to every id"`
	Mailbox    string   `json:"mailbox,omitempty" jsonschema:"Mailbox hint applied to every id"`
}

type markResults struct {
	Results []mail.MarkResult `json:"results"`
}

func markAnnotations(title string) *mcp.ToolAnnotations {
	// Setting a status twice is a no-op in the mail client.
	return &mcp.ToolAnnotations{
		Title:           title,
		IdempotentHint:  true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

func registerMarkRead(srv *mcp.Server, c *mail.Client) {
	register(srv, c, &mcp.Tool{
		Name:        "mark_read",
		Description: "Marks one or more messages as read by their message ids.",
		Annotations: markAnnotations("Mark Read"),
	}, handleMarkRead)
}

func registerMarkUnread(srv *mcp.Server, c *mail.Client) {
	register(srv, c, &mcp.Tool{
		Name:        "mark_unread",
		Description: "Marks one or more messages as unread by their message ids.",
		Annotations: markAnnotations("Mark Unread"),
	}, handleMarkUnread)
}

func registerMarkFlagged(srv *mcp.Server, c *mail.Client) {
	register(srv, c, &mcp.Tool{
		Name:        "mark_flagged",
		Description: "Flags or unflags one or more messages by their message ids.",
		Annotations: markAnnotations("Mark Flagged"),
	}, handleMarkFlagged)
}

func handleMarkRead(ctx context.Context, c *mail.Client, in MarkInput) (any, error) {
	results, err := c.MarkRead(ctx, in.MessageIDs, true, in.Account, in.Mailbox)
	if err != nil {
		return nil, err
	}
	return markResults{Results: results}, nil
}

func handleMarkUnread(ctx context.Context, c *mail.Client, in MarkInput) (any, error) {
	results, err := c.MarkRead(ctx, in.MessageIDs, false, in.Account, in.Mailbox)
	if err != nil {
		return nil, err
	}
	return markResults{Results: results}, nil
}

func handleMarkFlagged(ctx context.Context, c *mail.Client, in MarkFlaggedInput) (any, error) {
	results, err := c.MarkFlagged(ctx, in.MessageIDs, in.Flagged, in.Account, in.Mailbox)
	if err != nil {
		return nil, err
	}
	return markResults{Results: results}, nil
}
