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

// ListAccountsInput defines input parameters for the list_accounts tool.
type ListAccountsInput struct{}

type listAccountsResult struct {
	Accounts []mail.Account `json:"accounts"`
}

func registerListAccounts(srv *mcp.Server, c *mail.Client) {
	register(srv, c, &mcp.Tool{
		Name:        "list_accounts",
		Description: "Lists all email accounts configured in Apple Mail with their type and email addresses.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "List Mail Accounts",
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleListAccounts)
}

func handleListAccounts(ctx context.Context, c *mail.Client, _ ListAccountsInput) (any, error) {
	accounts, err := c.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	return listAccountsResult{Accounts: accounts}, nil
}
