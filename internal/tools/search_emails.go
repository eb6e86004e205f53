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

// SearchEmailsInput defines input parameters for the search_emails tool.
type SearchEmailsInput struct {
	Account    string `json:"account,omitempty" jsonschema:"Restrict the search to one account. Omit to search every account."`
	Mailbox    string `json:"mailbox,omitempty" jsonschema:"Mailbox to search, defaults to INBOX"`
	Subject    string `json:"subject,omitempty" jsonschema:"Substring filter on the subject"`
	Sender     string `json:"sender,omitempty" jsonschema:"Substring filter on the sender"`
	ReadStatus *bool  `json:"read_status,omitempty" jsonschema:"Filter by read status: true for read, false for unread"`
	DateAfter  string `json:"date_after,omitempty" jsonschema:"Only messages received on or after this date (YYYY-MM-DD)"`
	DateBefore string `json:"date_before,omitempty" jsonschema:"Only messages received on or before this date (YYYY-MM-DD)"`
}

type searchEmailsResult struct {
	Messages []mail.MessageSummary `json:"messages"`
	Count    int                   `json:"count"`
}

func registerSearchEmails(srv *mcp.Server, c *mail.Client) {
	register(srv, c, &mcp.Tool{
		Name:        "search_emails",
		Description: "Searches messages by subject, sender, read status and date range. Results are capped; narrow the filters for large mailboxes.",
		Annotations: &mcp.ToolAnnotations{
			Title:           "Search Emails",
			ReadOnlyHint:    true,
			IdempotentHint:  true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleSearchEmails)
}

func handleSearchEmails(ctx context.Context, c *mail.Client, in SearchEmailsInput) (any, error) {
	messages, err := c.Search(ctx, mail.SearchFilter{
		Account:    in.Account,
		Mailbox:    in.Mailbox,
		Subject:    in.Subject,
		Sender:     in.Sender,
		ReadStatus: in.ReadStatus,
		DateAfter:  in.DateAfter,
		DateBefore: in.DateBefore,
	})
	if err != nil {
		return nil, err
	}
	return searchEmailsResult{Messages: messages, Count: len(messages)}, nil
}
