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

package applescript

import "strings"

// Record maps a field name to its trimmed value. Trailing fields the
// source line did not carry are absent from the map.
type Record map[string]string

// ParseRecords splits interpreter output into one record per non-empty
// line. Lines are tab-split into at most len(fields) parts, so the
// last field absorbs any remaining content verbatim aside from
// trimming. Ragged lines are fine: missing trailing columns simply
// stay absent. Empty input yields an empty sequence.
func ParseRecords(raw string, fields []string) []Record {
	var records []Record
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", len(fields))
		rec := make(Record, len(parts))
		for i, part := range parts {
			rec[fields[i]] = strings.TrimSpace(part)
		}
		records = append(records, rec)
	}
	if records == nil {
		return []Record{}
	}
	return records
}

// SplitFields is the ad-hoc variant for single-record replies: a
// limited tab split of the whole output, each part trimmed. The last
// part keeps embedded tabs and newlines, which matters for message
// bodies.
func SplitFields(raw string, n int) []string {
	parts := strings.SplitN(raw, "\t", n)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
