// debug_tokens prints the token stream of a SysY source file, one token per
// line, for inspecting lexer behavior.
package main

import (
	"fmt"
	"os"

	"github.com/tinyrange/sysy/internal/errors"
	"github.com/tinyrange/sysy/internal/lexer"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: debug_tokens <file>")
		os.Exit(errors.ExitUsage)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errors.NewIOError(os.Args[1], err))
		os.Exit(errors.ExitIO)
	}
	l := lexer.New(string(data))
	for {
		t := l.Next()
		fmt.Printf("%d:%d\t%s\t%q\n", t.Line, t.Col, t.Type, t.Lex)
		if t.Type == lexer.EOF {
			break
		}
	}
}
