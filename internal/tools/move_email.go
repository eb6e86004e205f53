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

// MoveEmailInput defines input parameters for the move_email tool.
type MoveEmailInput struct {
	MessageID string `json:"message_id" jsonschema:"Message id of the message to move"`
	ToAccount string `json:"to_account" jsonschema:"Destination account name"`
	ToMailbox string `json:"to_mailbox" jsonschema:"Destination mailbox name. Not checked for existence; a missing mailbox is a mail client error."`
	Account   string `json:"account,omitempty" jsonschema:"Source account hint"`
	Mailbox   string `json:"mailbox,omitempty" jsonschema:"Source mailbox hint"`
}

type moveEmailResult struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
	Account   string `json:"account"`
	Mailbox   string `json:"mailbox"`
}

func registerMoveEmail(srv *mcp.Server, c *mail.Client) {
	register(srv, c, &mcp.Tool{
		Name:        "move_email",
		Description: "Moves a message to another mailbox, possibly of another account.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Move Email",
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleMoveEmail)
}

func handleMoveEmail(ctx context.Context, c *mail.Client, in MoveEmailInput) (any, error) {
	dst, err := c.Move(ctx, in.MessageID, in.ToAccount, in.ToMailbox, in.Account, in.Mailbox)
	if err != nil {
		return nil, err
	}
	return moveEmailResult{
		MessageID: in.MessageID,
		Status:    mail.StatusMoved,
		Account:   dst.Account,
		Mailbox:   dst.Mailbox,
	}, nil
}
