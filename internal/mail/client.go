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

package mail

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"mailbridge/internal/applescript"
)

// DefaultSearchLimit caps search results when no override is configured.
const DefaultSearchLimit = 50

// addressSeparator joins address lists inside script output; the
// mapper splits them back on the way out.
const addressSeparator = ", "

// Client exposes Apple Mail operations. It is stateless apart from its
// injected dependencies and safe to share, though the stdio transport
// serializes calls anyway.
type Client struct {
	run         applescript.Runner
	log         zerolog.Logger
	searchLimit int
}

// NewClient builds a Client on the given runner. A zero searchLimit
// falls back to DefaultSearchLimit.
func NewClient(run applescript.Runner, logger zerolog.Logger, searchLimit int) *Client {
	if searchLimit <= 0 {
		searchLimit = DefaultSearchLimit
	}
	return &Client{run: run, log: logger, searchLimit: searchLimit}
}

// ListAccounts enumerates all accounts with their address lists.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var s applescript.Script
	s.Line(`set out to ""`)
	s.Begin(`tell application "Mail"`)
	s.Begin(`repeat with acct in accounts`)
	s.Linef(`set AppleScript's text item delimiters to %s`, applescript.Quote(addressSeparator))
	s.Line(`set addrText to (email addresses of acct) as string`)
	s.Line(`set AppleScript's text item delimiters to ""`)
	s.Linef(`set out to out & %s & linefeed`, applescript.TabJoined(
		`(name of acct)`,
		`((account type of acct) as string)`,
		`addrText`,
	))
	s.End(`end repeat`)
	s.End(`end tell`)
	s.Line(`return out`)

	out, err := c.run.Run(ctx, s.String())
	if err != nil {
		return nil, err
	}

	records := applescript.ParseRecords(out, []string{"name", "type", "addresses"})
	accounts := make([]Account, 0, len(records))
	for _, rec := range records {
		accounts = append(accounts, Account{
			Name:           rec["name"],
			Type:           rec["type"],
			EmailAddresses: splitAddresses(rec["addresses"]),
		})
	}
	c.log.Debug().Int("accounts", len(accounts)).Msg("listed accounts")
	return accounts, nil
}

// ListMailboxes enumerates the mailboxes of one account with their
// unread counts.
func (c *Client) ListMailboxes(ctx context.Context, account string) ([]Mailbox, error) {
	var s applescript.Script
	s.Line(`set out to ""`)
	s.Begin(`tell application "Mail"`)
	s.Beginf(`repeat with mb in (mailboxes of account %s)`, applescript.Quote(account))
	s.Linef(`set out to out & %s & linefeed`, applescript.TabJoined(
		`(name of mb)`,
		`(unread count of mb)`,
	))
	s.End(`end repeat`)
	s.End(`end tell`)
	s.Line(`return out`)

	out, err := c.run.Run(ctx, s.String())
	if err != nil {
		return nil, err
	}

	records := applescript.ParseRecords(out, []string{"name", "unread"})
	mailboxes := make([]Mailbox, 0, len(records))
	for _, rec := range records {
		count, _ := strconv.Atoi(rec["unread"])
		mailboxes = append(mailboxes, Mailbox{Name: rec["name"], UnreadCount: count})
	}
	return mailboxes, nil
}

// UnreadCount reads the unread count of a single mailbox.
func (c *Client) UnreadCount(ctx context.Context, account, mailbox string) (int, error) {
	var s applescript.Script
	s.Begin(`tell application "Mail"`)
	s.Linef(`return unread count of mailbox %s of account %s`,
		applescript.Quote(mailbox), applescript.Quote(account))
	s.End(`end tell`)

	out, err := c.run.Run(ctx, s.String())
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(out))
}

func splitAddresses(joined string) []string {
	if joined == "" {
		return []string{}
	}
	parts := strings.Split(joined, addressSeparator)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}
