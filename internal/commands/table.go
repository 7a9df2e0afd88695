package commands

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

type handler func(a *Assistant, args []string) (string, error)

type command struct {
	names []string
	args  string // argument hint shown by help
	help  string // message key
	run   handler
	exit  bool
}

// table lists the commands in the order help prints them. It is filled in
// init because help reads it.
var (
	table []command
	index map[string]*command
)

func init() {
	table = []command{
		{names: []string{config.CmdHello}, help: config.TKeyHelpHello, run: (*Assistant).hello},
		{names: []string{config.CmdAdd}, args: "<name> <phone>", help: config.TKeyHelpAdd, run: (*Assistant).add},
		{names: []string{config.CmdChange}, args: "<name> [old] <new>", help: config.TKeyHelpChange, run: (*Assistant).change},
		{names: []string{config.CmdPhone}, args: "<name>", help: config.TKeyHelpPhone, run: (*Assistant).phone},
		{names: []string{config.CmdAll}, help: config.TKeyHelpAll, run: (*Assistant).all},
		{names: []string{config.CmdAddBirthday}, args: "<name> <date>", help: config.TKeyHelpAddBirthday, run: (*Assistant).addBirthday},
		{names: []string{config.CmdShowBirthday}, args: "<name>", help: config.TKeyHelpShowBirthday, run: (*Assistant).showBirthday},
		{names: []string{config.CmdBirthdays}, args: config.UsageSuffixDays, help: config.TKeyHelpBirthdays, run: (*Assistant).birthdays},
		{names: []string{config.CmdDelete}, args: "<name>", help: config.TKeyHelpDelete, run: (*Assistant).deleteContact},
		{names: []string{config.CmdVCard}, args: "<name>", help: config.TKeyHelpVCard, run: (*Assistant).vcard},
		{names: []string{config.CmdCalendar}, args: config.UsageSuffixDays, help: config.TKeyHelpCalendar, run: (*Assistant).calendar},
		{names: []string{config.CmdHelp}, help: config.TKeyHelpHelp, run: (*Assistant).help},
		{names: []string{config.CmdClose, config.CmdExit}, help: config.TKeyHelpExit, run: (*Assistant).goodbye, exit: true},
	}
	index = buildIndex()
}

func buildIndex() map[string]*command {
	m := make(map[string]*command)
	for i := range table {
		for _, name := range table[i].names {
			m[name] = &table[i]
		}
	}
	return m
}

func lookup(name string) (*command, bool) {
	c, ok := index[name]
	return c, ok
}

// Names returns every recognised command word, aliases included.
func Names() []string {
	var out []string
	for _, c := range table {
		out = append(out, c.names...)
	}
	return out
}

func (c *command) usage() string {
	u := strings.Join(c.names, ", ")
	if c.args != "" {
		u += " " + c.args
	}
	return u
}

func (a *Assistant) help(_ []string) (string, error) {
	lines := []string{a.catalog.Msg(config.TKeyHelpHeader, nil)}
	for i := range table {
		c := &table[i]
		lines = append(lines, fmt.Sprintf(config.FormatHelpLine, c.usage(), a.catalog.Msg(c.help, nil)))
	}
	return strings.Join(lines, config.LineSeparator), nil
}
