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

import (
	"fmt"
	"strconv"
	"strings"
)

// DateExpr renders statements that assign an AppleScript date to
// varName from a YYYY-MM-DD string. The time component is 0:0:0 by
// default, or 23:59:59 when endOfDay is set so the value can serve as
// an inclusive upper bound. Year, month and day are taken positionally
// from the dash-split string; date syntax is not validated beyond the
// integer conversions, whose failures are returned as-is.
func DateExpr(varName, isoDate string, endOfDay bool) (string, error) {
	parts := strings.SplitN(isoDate, "-", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", err
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", err
	}

	hour, minute, second := 0, 0, 0
	if endOfDay {
		hour, minute, second = 23, 59, 59
	}

	var b strings.Builder
	fmt.Fprintf(&b, "set %s to current date\n", varName)
	fmt.Fprintf(&b, "set year of %s to %d\n", varName, year)
	fmt.Fprintf(&b, "set month of %s to %d\n", varName, month)
	fmt.Fprintf(&b, "set day of %s to %d\n", varName, day)
	fmt.Fprintf(&b, "set hours of %s to %d\n", varName, hour)
	fmt.Fprintf(&b, "set minutes of %s to %d\n", varName, minute)
	fmt.Fprintf(&b, "set seconds of %s to %d\n", varName, second)
	return b.String(), nil
}
