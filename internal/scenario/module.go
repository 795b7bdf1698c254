package scenario

import (
	"fmt"
	"regexp"
	"strings"
)

// Module is a dashboard area the user can switch to.
type Module struct {
	Name       string
	Aliases    []string
	SubModules []string
}

// Modules lists the dashboard modules.
var Modules = []Module{
	{Name: "Dashboard", Aliases: []string{"dashboard", "home", "overview"}},
	{Name: "Assets", Aliases: []string{"assets", "asset"}, SubModules: []string{"Asset Register", "Maintenance", "Allocation", "Audit"}},
	{Name: "People", Aliases: []string{"people", "devotees"}, SubModules: []string{"Devotees", "Staff", "Volunteers", "Priests"}},
	{Name: "Roles", Aliases: []string{"roles", "role"}},
	{Name: "Departments", Aliases: []string{"departments", "department"}},
}

var (
	navigatePattern = regexp.MustCompile(`(?i)^(?:please\s+)?(?:go\s+to|open|switch\s+to|navigate\s+to|take\s+me\s+to|show\s+me\s+the)\s+(?:the\s+)?(\w+)(?:\s+(?:module|page|section|tab))?\s*[.!]?$`)
	barePattern     = regexp.MustCompile(`(?i)^(\w+)(?:\s+module)?\s*[.!]?$`)
)

// ModuleSwitch handles navigation requests such as "go to assets".
func ModuleSwitch(req Request) *Reply {
	var name string
	if m := navigatePattern.FindStringSubmatch(req.Query); m != nil {
		name = m[1]
	} else if m := barePattern.FindStringSubmatch(req.Query); m != nil {
		name = m[1]
	} else {
		return nil
	}
	mod, ok := moduleFor(name)
	if !ok {
		return nil
	}
	text := fmt.Sprintf("Switching to the %s module.", mod.Name)
	if len(mod.SubModules) > 0 {
		text += fmt.Sprintf(" Available sections: %s.", strings.Join(mod.SubModules, ", "))
	}
	return &Reply{Text: text, Module: mod.Name}
}

func moduleFor(name string) (Module, bool) {
	name = strings.ToLower(name)
	for _, m := range Modules {
		for _, alias := range m.Aliases {
			if alias == name {
				return m, true
			}
		}
	}
	return Module{}, false
}
