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
	"fmt"
	"strconv"
	"strings"

	"mailbridge/internal/applescript"
	apperrors "mailbridge/internal/errors"
)

// Locate resolves a message id to its exact (account, mailbox) pair.
//
// With both hints present the named mailbox is only verified to
// contain the id; the hints come back unchanged and uniqueness within
// the mailbox is not checked. With anything less than both hints every
// account and mailbox is searched in the client's native order and the
// first match wins. Callers that need a specific copy of a duplicated
// message id must supply both hints.
func (c *Client) Locate(ctx context.Context, messageID, account, mailbox string) (Location, error) {
	if account != "" && mailbox != "" {
		return c.verifyLocation(ctx, messageID, account, mailbox)
	}
	return c.searchLocation(ctx, messageID)
}

func (c *Client) verifyLocation(ctx context.Context, messageID, account, mailbox string) (Location, error) {
	var s applescript.Script
	s.Begin(`tell application "Mail"`)
	s.Linef(`return count of (messages of mailbox %s of account %s whose message id is %s)`,
		applescript.Quote(mailbox), applescript.Quote(account), applescript.Quote(messageID))
	s.End(`end tell`)

	out, err := c.run.Run(ctx, s.String())
	if err != nil {
		return Location{}, err
	}

	count, _ := strconv.Atoi(strings.TrimSpace(out))
	if count == 0 {
		return Location{}, apperrors.New(apperrors.CodeNotFound,
			fmt.Sprintf("Message not found in %s of %s", mailbox, account))
	}
	return Location{Account: account, Mailbox: mailbox}, nil
}

func (c *Client) searchLocation(ctx context.Context, messageID string) (Location, error) {
	var s applescript.Script
	s.Begin(`tell application "Mail"`)
	s.Begin(`repeat with acct in accounts`)
	s.Begin(`repeat with mb in (mailboxes of acct)`)
	// Some mailboxes (smart folders, disconnected stores) error on
	// whose-queries; skip them instead of aborting the traversal.
	s.Begin(`try`)
	s.Beginf(`if (count of (messages of mb whose message id is %s)) > 0 then`,
		applescript.Quote(messageID))
	s.Line(`return (name of acct) & tab & (name of mb)`)
	s.End(`end if`)
	s.End(`end try`)
	s.End(`end repeat`)
	s.End(`end repeat`)
	s.End(`end tell`)
	s.Line(`return ""`)

	out, err := c.run.Run(ctx, s.String())
	if err != nil {
		return Location{}, err
	}
	if strings.TrimSpace(out) == "" {
		return Location{}, apperrors.New(apperrors.CodeNotFound, "Message not found")
	}

	parts := applescript.SplitFields(out, 2)
	loc := Location{Account: parts[0]}
	if len(parts) > 1 {
		loc.Mailbox = parts[1]
	}
	c.log.Debug().Str("account", loc.Account).Str("mailbox", loc.Mailbox).Msg("resolved message id")
	return loc, nil
}
