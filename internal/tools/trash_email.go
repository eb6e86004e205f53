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

// TrashEmailInput defines input parameters for the trash_email tool.
type TrashEmailInput struct {
	MessageID string `json:"message_id" jsonschema:"Message id of the message to trash"`
	Account   string `json:"account,omitempty" jsonschema:"Account hint"`
	Mailbox   string `json:"mailbox,omitempty" jsonschema:"Mailbox hint"`
}

type trashEmailResult struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

func registerTrashEmail(srv *mcp.Server, c *mail.Client) {
	register(srv, c, &mcp.Tool{
		Name:        "trash_email",
		Description: "Moves a message to the trash. This is the mail client's move-to-trash, not a permanent erase.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Trash Email",
			DestructiveHint: boolPtr(true),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleTrashEmail)
}

func handleTrashEmail(ctx context.Context, c *mail.Client, in TrashEmailInput) (any, error) {
	if err := c.Trash(ctx, in.MessageID, in.Account, in.Mailbox); err != nil {
		return nil, err
	}
	return trashEmailResult{MessageID: in.MessageID, Status: mail.StatusTrashed}, nil
}
