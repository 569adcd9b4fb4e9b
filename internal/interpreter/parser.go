package interpreter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Robot is a parsed robot record: where it starts and what it will do.
type Robot struct {
	X, Y     int
	Heading  Direction
	Commands []Command
}

// robotRecord is the raw shape of "(X, Y, H) COMMANDS". Letter runs are
// captured whole and checked against the vocabularies afterwards, so a wrong
// letter is reported as such rather than as a syntax error.
type robotRecord struct {
	X        string `parser:"'(' @Int ',' Whitespace?"`
	Y        string `parser:"@Int ',' Whitespace?"`
	Heading  string `parser:"@Letters ')' Whitespace?"`
	Commands string `parser:"@Letters"`
}

var robotLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Letters", Pattern: `\p{L}+`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var robotParser = participle.MustBuild[robotRecord](
	participle.Lexer(robotLexer),
)

// ParseRobot reads a robot line such as "(2, 3, E) LFRFF".
func ParseRobot(line string) (*Robot, error) {
	rec, err := robotParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return nil, newParseError(ErrMalformedRobot, line, err)
	}

	x, err := strconv.Atoi(rec.X)
	if err != nil {
		return nil, newParseError(ErrMalformedRobot, line, err)
	}
	y, err := strconv.Atoi(rec.Y)
	if err != nil {
		return nil, newParseError(ErrMalformedRobot, line, err)
	}

	if utf8.RuneCountInString(rec.Heading) != 1 {
		return nil, newParseError(ErrUnknownHeading, line,
			fmt.Errorf("heading %q is not a single letter", rec.Heading))
	}
	heading, err := ParseDirection([]rune(rec.Heading)[0])
	if err != nil {
		return nil, newParseError(ErrUnknownHeading, line, err)
	}

	cmds, err := ParseCommands(rec.Commands)
	if err != nil {
		return nil, newParseError(ErrUnknownCommand, line, err)
	}

	return &Robot{X: x, Y: y, Heading: heading, Commands: cmds}, nil
}

func (r *Robot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%d, %d, %s)", r.X, r.Y, r.Heading)
	if len(r.Commands) > 0 {
		b.WriteByte(' ')
	}
	for _, c := range r.Commands {
		b.WriteString(c.String())
	}
	return b.String()
}
