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

// ReadEmailInput defines input parameters for the read_email tool.
type ReadEmailInput struct {
	MessageID string `json:"message_id" jsonschema:"RFC 822 message id of the message to read"`
	Account   string `json:"account,omitempty" jsonschema:"Account hint; with mailbox it skips the exhaustive search"`
	Mailbox   string `json:"mailbox,omitempty" jsonschema:"Mailbox hint; with account it skips the exhaustive search"`
}

func registerReadEmail(srv *mcp.Server, c *mail.Client) {
	register(srv, c, &mcp.Tool{
		Name:        "read_email",
		Description: "Reads the full content of one message by its message id. Supply account and mailbox when known; otherwise every mailbox is searched and the first match wins.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Read Email",
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleReadEmail)
}

func handleReadEmail(ctx context.Context, c *mail.Client, in ReadEmailInput) (any, error) {
	detail, err := c.Read(ctx, in.MessageID, in.Account, in.Mailbox)
	if err != nil {
		return nil, err
	}
	return detail, nil
}
