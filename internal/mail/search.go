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

var searchFields = []string{"id", "account", "mailbox", "date", "read", "sender", "subject"}

// Search finds messages matching the filter, capped at the configured
// result limit in the client's traversal order.
//
// Substring and read-status filters are pushed into the whose clause;
// the date range is applied afterwards by an in-script conditional so
// both bounds can be built as real date values. Without an explicit
// account the search spans every account; the mailbox defaults to
// "INBOX". Mailboxes that error during the query are skipped.
func (c *Client) Search(ctx context.Context, filter SearchFilter) ([]MessageSummary, error) {
	mailbox := filter.Mailbox
	if mailbox == "" {
		mailbox = "INBOX"
	}

	var conds []string
	if filter.Subject != "" {
		conds = append(conds, applescript.Contains("subject", filter.Subject))
	}
	if filter.Sender != "" {
		conds = append(conds, applescript.Contains("sender", filter.Sender))
	}
	if filter.ReadStatus != nil {
		operand := "false"
		if *filter.ReadStatus {
			operand = "true"
		}
		conds = append(conds, applescript.Is("read status", operand))
	}

	var s applescript.Script
	s.Line(`set out to ""`)
	s.Line(`set total to 0`)
	if filter.DateAfter != "" {
		stmts, err := applescript.DateExpr("startDate", filter.DateAfter, false)
		if err != nil {
			return nil, err
		}
		s.Raw(stmts)
	}
	if filter.DateBefore != "" {
		stmts, err := applescript.DateExpr("endDate", filter.DateBefore, true)
		if err != nil {
			return nil, err
		}
		s.Raw(stmts)
	}

	s.Begin(`tell application "Mail"`)
	if filter.Account != "" {
		s.Beginf(`repeat with acct in {account %s}`, applescript.Quote(filter.Account))
	} else {
		s.Begin(`repeat with acct in accounts`)
	}
	s.Linef(`if total is greater than or equal to %d then exit repeat`, c.searchLimit)
	s.Begin(`try`)
	s.Linef(`set mb to mailbox %s of acct`, applescript.Quote(mailbox))
	if len(conds) > 0 {
		s.Linef(`set hits to (messages of mb whose %s)`, applescript.AllOf(conds...))
	} else {
		s.Line(`set hits to (messages of mb)`)
	}
	s.Begin(`repeat with msg in hits`)
	s.Linef(`if total is greater than or equal to %d then exit repeat`, c.searchLimit)
	s.Line(`set keep to true`)
	if filter.DateAfter != "" {
		s.Line(`if (date received of msg) < startDate then set keep to false`)
	}
	if filter.DateBefore != "" {
		s.Line(`if (date received of msg) > endDate then set keep to false`)
	}
	s.Begin(`if keep then`)
	s.Linef(`set out to out & %s & linefeed`, applescript.TabJoined(
		`(message id of msg)`,
		`(name of acct)`,
		`(name of mb)`,
		`((date received of msg) as string)`,
		`((read status of msg) as string)`,
		`(sender of msg)`,
		`(subject of msg)`,
	))
	s.Line(`set total to total + 1`)
	s.End(`end if`)
	s.End(`end repeat`)
	s.End(`end try`)
	s.Linef(`if total is greater than or equal to %d then exit repeat`, c.searchLimit)
	s.End(`end repeat`)
	s.End(`end tell`)
	s.Line(`return out`)

	out, err := c.run.Run(ctx, s.String())
	if err != nil {
		return nil, err
	}

	records := applescript.ParseRecords(out, searchFields)
	messages := make([]MessageSummary, 0, len(records))
	for _, rec := range records {
		messages = append(messages, MessageSummary{
			MessageID: rec["id"],
			Account:   rec["account"],
			Mailbox:   rec["mailbox"],
			Date:      rec["date"],
			IsRead:    parseBool(rec["read"]),
			Sender:    rec["sender"],
			Subject:   rec["subject"],
		})
	}
	c.log.Debug().Int("matches", len(messages)).Msg("search finished")
	return messages, nil
}
