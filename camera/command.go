package camera

import (
	"fmt"
	"strconv"
	"strings"
)

// filmFitTokens maps stored film fit codes to their command tokens. Codes
// without a mapping, including the zero default and the gap at 3, render
// as Fill.
var filmFitTokens = map[int]string{
	1: "Horizontal",
	2: "Vertical",
	4: "Overscan",
}

// FilmFitToken returns the symbolic film fit name for a stored code.
func FilmFitToken(code int) string {
	if token, ok := filmFitTokens[code]; ok {
		return token
	}
	return "Fill"
}

// Flag is one rendered flag/value pair of the camera command.
type Flag struct {
	Name  string
	Value string
}

// Command is the fully resolved camera-creation invocation: the command
// name, its ordered flags, and the node count for the trailing
// node-creation clause. It is rebuilt from the store on demand and never
// cached.
type Command struct {
	Name      string
	Flags     []Flag
	NodeCount int
}

// String renders the command as host script text: the flag sequence
// followed by the fixed selection-clearing and node-creation clauses.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Name)
	for _, f := range c.Flags {
		b.WriteString(" -")
		b.WriteString(f.Name)
		b.WriteString(" ")
		b.WriteString(f.Value)
	}
	fmt.Fprintf(&b, `; select -cl; cameraMakeNode %d "";`, c.NodeCount)
	return b.String()
}

// Command assembles the creation command from the current store contents.
// Apart from the defaults guarantee it only reads the store.
func (s *Settings) Command() Command {
	s.EnsureDefaults(false)
	flags := make([]Flag, 0, len(schema))
	for _, def := range schema {
		var value string
		switch def.Type {
		case FloatSetting:
			value = formatFloat(s.store.Float(def.Name))
		case BoolSetting:
			value = formatBool(s.store.Bool(def.Name))
		case IntSetting:
			if def.Name == KeyFilmFit {
				value = FilmFitToken(s.store.Int(def.Name))
			} else {
				value = strconv.Itoa(s.store.Int(def.Name))
			}
		}
		flags = append(flags, Flag{Name: def.Flag, Value: value})
	}
	return Command{Name: "camera", Flags: flags, NodeCount: s.NodeCount()}
}

// Assemble renders the creation command in one step.
func (s *Settings) Assemble() string {
	return s.Command().String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
