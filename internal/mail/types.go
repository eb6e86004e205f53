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

// Package mail talks to the Apple Mail application through generated
// AppleScript. Nothing here is cached or persisted; every call
// re-queries the mail client, which stays the single source of truth.
package mail

// Account is a configured mail account as the client reports it.
type Account struct {
	Name           string   `json:"name"`
	Type           string   `json:"type"`
	EmailAddresses []string `json:"email_addresses"`
}

// Mailbox is a folder of one account. Names are unique only within
// their account; "INBOX" typically exists under every account.
type Mailbox struct {
	Name        string `json:"name"`
	UnreadCount int    `json:"unread_count"`
}

// MessageSummary is one search hit. Date is the client-native
// timestamp string, passed through untouched.
type MessageSummary struct {
	MessageID string `json:"message_id"`
	Account   string `json:"account"`
	Mailbox   string `json:"mailbox"`
	Date      string `json:"date"`
	IsRead    bool   `json:"is_read"`
	Sender    string `json:"sender"`
	Subject   string `json:"subject"`
}

// MessageDetail is the full field set returned by Read.
type MessageDetail struct {
	MessageID string   `json:"message_id"`
	Account   string   `json:"account"`
	Mailbox   string   `json:"mailbox"`
	Subject   string   `json:"subject"`
	Sender    string   `json:"sender"`
	To        []string `json:"to"`
	CC        []string `json:"cc"`
	Date      string   `json:"date"`
	IsRead    bool     `json:"is_read"`
	IsFlagged bool     `json:"is_flagged"`
	Body      string   `json:"body"`
}

// Location is the (account, mailbox) pair a message id resolved to.
type Location struct {
	Account string `json:"account"`
	Mailbox string `json:"mailbox"`
}

// MarkResult is the per-id status record of a batch mark operation.
type MarkResult struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

// SearchFilter narrows a search. Zero values mean "no constraint";
// ReadStatus is a pointer so false can be distinguished from unset.
type SearchFilter struct {
	Account    string
	Mailbox    string
	Subject    string
	Sender     string
	ReadStatus *bool
	DateAfter  string
	DateBefore string
}
