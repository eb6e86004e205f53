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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"mailbridge/internal/mail"
	"mailbridge/internal/tools"
)

// runConsole is a developer loop for invoking tools by hand:
// a tool name followed by optional JSON arguments, e.g.
//
//	list_mailboxes {"account": "Work"}
func runConsole(logger zerolog.Logger, client *mail.Client) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Fatal().Msg("Interactive console needs a terminal; run without -i for the MCP transport")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mail> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    toolCompleter(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize readline")
	}
	defer rl.Close()

	fmt.Println("Mailbridge console. Tool name plus optional JSON arguments; Ctrl-D exits.")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			logger.Error().Err(err).Msg("Readline failed")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, args, _ := strings.Cut(line, " ")
		out, err := tools.Invoke(context.Background(), client, name, []byte(strings.TrimSpace(args)))
		if err != nil {
			fmt.Printf("%v (tools: %s)\n", err, strings.Join(tools.Names(), ", "))
			continue
		}
		fmt.Println(out)
	}
}

func toolCompleter() *readline.PrefixCompleter {
	names := tools.Names()
	items := make([]readline.PrefixCompleterInterface, len(names))
	for i, name := range names {
		items[i] = readline.PcItem(name)
	}
	return readline.NewPrefixCompleter(items...)
}
