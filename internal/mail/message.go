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

	"mailbridge/internal/applescript"
)

// Statuses reported by the mutating operations.
const (
	StatusMarkedRead   = "marked_read"
	StatusMarkedUnread = "marked_unread"
	StatusFlagged      = "flagged"
	StatusUnflagged    = "unflagged"
	StatusMoved        = "moved"
	StatusTrashed      = "trashed"
)

// Read resolves the message location and fetches the full field set.
// The body is the last wire field so it can absorb embedded tabs and
// newlines through the limited split.
func (c *Client) Read(ctx context.Context, messageID, account, mailbox string) (MessageDetail, error) {
	loc, err := c.Locate(ctx, messageID, account, mailbox)
	if err != nil {
		return MessageDetail{}, err
	}

	var s applescript.Script
	s.Begin(`tell application "Mail"`)
	s.Linef(`set msg to item 1 of (messages of %s whose message id is %s)`,
		mailboxRef(loc), applescript.Quote(messageID))
	s.Linef(`set AppleScript's text item delimiters to %s`, applescript.Quote(addressSeparator))
	s.Line(`set toText to (address of to recipients of msg) as string`)
	s.Line(`set ccText to (address of cc recipients of msg) as string`)
	s.Line(`set AppleScript's text item delimiters to ""`)
	s.Linef(`return %s`, applescript.TabJoined(
		`(subject of msg)`,
		`(sender of msg)`,
		`toText`,
		`ccText`,
		`((date received of msg) as string)`,
		`((read status of msg) as string)`,
		`((flagged status of msg) as string)`,
		`(content of msg)`,
	))
	s.End(`end tell`)

	out, err := c.run.Run(ctx, s.String())
	if err != nil {
		return MessageDetail{}, err
	}

	parts := applescript.SplitFields(out, 8)
	for len(parts) < 8 {
		parts = append(parts, "")
	}
	return MessageDetail{
		MessageID: messageID,
		Account:   loc.Account,
		Mailbox:   loc.Mailbox,
		Subject:   parts[0],
		Sender:    parts[1],
		To:        splitAddresses(parts[2]),
		CC:        splitAddresses(parts[3]),
		Date:      parts[4],
		IsRead:    parseBool(parts[5]),
		IsFlagged: parseBool(parts[6]),
		Body:      parts[7],
	}, nil
}

// MarkRead sets the read status of each message id. Ids are resolved
// independently, so structural changes made mid-batch are visible to
// later elements. The first failing id aborts the whole batch.
func (c *Client) MarkRead(ctx context.Context, messageIDs []string, read bool, account, mailbox string) ([]MarkResult, error) {
	status := StatusMarkedRead
	if !read {
		status = StatusMarkedUnread
	}
	return c.markEach(ctx, messageIDs, "read status", read, status, account, mailbox)
}

// MarkFlagged sets the flagged status of each message id, with the
// same batch semantics as MarkRead.
func (c *Client) MarkFlagged(ctx context.Context, messageIDs []string, flagged bool, account, mailbox string) ([]MarkResult, error) {
	status := StatusFlagged
	if !flagged {
		status = StatusUnflagged
	}
	return c.markEach(ctx, messageIDs, "flagged status", flagged, status, account, mailbox)
}

func (c *Client) markEach(ctx context.Context, messageIDs []string, property string, value bool, status, account, mailbox string) ([]MarkResult, error) {
	results := make([]MarkResult, 0, len(messageIDs))
	for _, id := range messageIDs {
		loc, err := c.Locate(ctx, id, account, mailbox)
		if err != nil {
			return nil, err
		}
		if err := c.setProperty(ctx, id, loc, property, value); err != nil {
			return nil, err
		}
		results = append(results, MarkResult{MessageID: id, Status: status})
	}
	return results, nil
}

func (c *Client) setProperty(ctx context.Context, messageID string, loc Location, property string, value bool) error {
	var s applescript.Script
	s.Begin(`tell application "Mail"`)
	s.Beginf(`repeat with msg in (messages of %s whose message id is %s)`,
		mailboxRef(loc), applescript.Quote(messageID))
	s.Linef(`set %s of msg to %t`, property, value)
	s.End(`end repeat`)
	s.End(`end tell`)

	_, err := c.run.Run(ctx, s.String())
	return err
}

// Move resolves the source location and moves the message to the
// destination mailbox. The destination is not pre-checked; a missing
// mailbox surfaces as a script error from the mail client.
func (c *Client) Move(ctx context.Context, messageID, toAccount, toMailbox, account, mailbox string) (Location, error) {
	loc, err := c.Locate(ctx, messageID, account, mailbox)
	if err != nil {
		return Location{}, err
	}

	dst := Location{Account: toAccount, Mailbox: toMailbox}
	var s applescript.Script
	s.Begin(`tell application "Mail"`)
	s.Beginf(`repeat with msg in (messages of %s whose message id is %s)`,
		mailboxRef(loc), applescript.Quote(messageID))
	s.Linef(`move msg to %s`, mailboxRef(dst))
	s.End(`end repeat`)
	s.End(`end tell`)

	if _, err := c.run.Run(ctx, s.String()); err != nil {
		return Location{}, err
	}
	c.log.Debug().Str("message_id", messageID).Str("to_account", toAccount).Str("to_mailbox", toMailbox).Msg("moved message")
	return dst, nil
}

// Trash resolves the location and deletes the message, which the mail
// client implements as a move to its trash mailbox, not an erase.
func (c *Client) Trash(ctx context.Context, messageID, account, mailbox string) error {
	loc, err := c.Locate(ctx, messageID, account, mailbox)
	if err != nil {
		return err
	}

	var s applescript.Script
	s.Begin(`tell application "Mail"`)
	s.Beginf(`repeat with msg in (messages of %s whose message id is %s)`,
		mailboxRef(loc), applescript.Quote(messageID))
	s.Line(`delete msg`)
	s.End(`end repeat`)
	s.End(`end tell`)

	_, err = c.run.Run(ctx, s.String())
	return err
}

// mailboxRef renders "mailbox X of account Y" with escaping applied.
func mailboxRef(loc Location) string {
	return "mailbox " + applescript.Quote(loc.Mailbox) + " of account " + applescript.Quote(loc.Account)
}
