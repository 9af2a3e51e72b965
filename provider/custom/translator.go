package custom

import (
	"strconv"
	"strings"

	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString || val.Type() == lua.LTNumber {
		return strings.TrimSpace(val.String())
	}
	return ""
}

func getInt(table *lua.LTable, key string) int {
	switch val := table.RawGetString(key).(type) {
	case lua.LNumber:
		return int(val)
	case lua.LString:
		n, err := strconv.Atoi(strings.TrimSpace(string(val)))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// stringList reads a list of strings given either as a table or as a comma separated string.
func stringList(val lua.LValue) []string {
	var list []string
	switch v := val.(type) {
	case lua.LString:
		list = strings.Split(string(v), ",")
	case *lua.LTable:
		v.ForEach(func(_, item lua.LValue) {
			if item.Type() == lua.LTString {
				list = append(list, item.String())
			}
		})
	}

	return lo.Compact(lo.Map(list, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}

func getStringList(table *lua.LTable, key string) []string {
	return stringList(table.RawGetString(key))
}

func peopleFromTable(table *lua.LTable, key string) []source.Person {
	list, ok := table.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}

	var people []source.Person
	list.ForEach(func(_, v lua.LValue) {
		switch item := v.(type) {
		case lua.LString:
			people = append(people, source.Person{Name: strings.TrimSpace(string(item))})
		case *lua.LTable:
			person := source.Person{
				Name:      getString(item, "name"),
				Role:      getString(item, "role"),
				Character: getString(item, "character"),
			}
			if person.Name != "" {
				people = append(people, person)
			}
		}
	})
	return people
}

// metadataFromTable converts the table returned by a script into metadata and the identifiers it names.
func metadataFromTable(table *lua.LTable) (source.Metadata, ident.Refs) {
	m := source.Metadata{
		Title:         getString(table, "title"),
		Synonyms:      getStringList(table, "synonyms"),
		Overview:      getString(table, "overview"),
		Genres:        getStringList(table, "genres"),
		Tags:          getStringList(table, "tags"),
		Cast:          peopleFromTable(table, "cast"),
		Crew:          peopleFromTable(table, "crew"),
		Cover:         source.Cover{ExtraLarge: getString(table, "poster")},
		BannerImage:   getString(table, "banner"),
		Status:        getString(table, "status"),
		StartDate:     source.ParseDate(getString(table, "aired")),
		EndDate:       source.ParseDate(getString(table, "ended")),
		Episodes:      getInt(table, "episodes"),
		Runtime:       getInt(table, "runtime"),
		Score:         lo.Clamp(getInt(table, "rating"), 0, 100),
		Studios:       getStringList(table, "studios"),
		Certification: getString(table, "certification"),
		URLs:          getStringList(table, "links"),
	}

	refs := make(ident.Refs)
	if tbl, ok := table.RawGetString("refs").(*lua.LTable); ok {
		tbl.ForEach(func(k, v lua.LValue) {
			if k.Type() == lua.LTString {
				refs.Set(ident.Namespace(k.String()), ident.Parse(v.String()))
			}
		})
	}

	return m, refs
}
