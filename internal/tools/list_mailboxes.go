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

// ListMailboxesInput defines input parameters for the list_mailboxes tool.
type ListMailboxesInput struct {
	Account string `json:"account" jsonschema:"Name of the email account. Mailbox and account names are case-sensitive."`
}

type listMailboxesResult struct {
	Account   string         `json:"account"`
	Mailboxes []mail.Mailbox `json:"mailboxes"`
}

func registerListMailboxes(srv *mcp.Server, c *mail.Client) {
	register(srv, c, &mcp.Tool{
		Name:        "list_mailboxes",
		Description: "Lists the mailboxes of one account with their unread counts.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "List Mailboxes",
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleListMailboxes)
}

func handleListMailboxes(ctx context.Context, c *mail.Client, in ListMailboxesInput) (any, error) {
	mailboxes, err := c.ListMailboxes(ctx, in.Account)
	if err != nil {
		return nil, err
	}
	return listMailboxesResult{Account: in.Account, Mailboxes: mailboxes}, nil
}
