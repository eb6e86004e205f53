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

// GetUnreadCountInput defines input parameters for the get_unread_count tool.
type GetUnreadCountInput struct {
	Account string `json:"account" jsonschema:"Name of the email account"`
	Mailbox string `json:"mailbox" jsonschema:"Name of the mailbox, e.g. INBOX"`
}

type unreadCountResult struct {
	Account     string `json:"account"`
	Mailbox     string `json:"mailbox"`
	UnreadCount int    `json:"unread_count"`
}

func registerGetUnreadCount(srv *mcp.Server, c *mail.Client) {
	register(srv, c, &mcp.Tool{
		Name:        "get_unread_count",
		Description: "Returns the number of unread messages in one mailbox of one account.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Get Unread Count",
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleGetUnreadCount)
}

func handleGetUnreadCount(ctx context.Context, c *mail.Client, in GetUnreadCountInput) (any, error) {
	count, err := c.UnreadCount(ctx, in.Account, in.Mailbox)
	if err != nil {
		return nil, err
	}
	return unreadCountResult{Account: in.Account, Mailbox: in.Mailbox, UnreadCount: count}, nil
}
